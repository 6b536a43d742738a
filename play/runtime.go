// Package play wires the world, the session and the frame systems into one
// runtime that can be driven by the window loop or by a script.
package play

import (
	"fmt"
	"log"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/ecs/entity"
	"github.com/milk9111/thechase/ecs/system"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/movement"
	"github.com/milk9111/thechase/prefabs"
	"github.com/milk9111/thechase/scene"
)

type Options struct {
	Spec    *prefabs.GameSpec
	Catalog *maps.Catalog
	Maps    system.MapSource
	Audio   system.AudioSink
	// First overrides the catalog's first map.
	First maps.ID
}

type Runtime struct {
	world *ecs.World
	frame *system.Frame
	sched *ecs.Scheduler[*system.Frame]
	first maps.ID

	player ecs.Entity
	camera ecs.Entity
}

func New(opts Options) (*Runtime, error) {
	if opts.Spec == nil || opts.Catalog == nil || opts.Maps == nil {
		return nil, fmt.Errorf("play: missing spec, catalog or maps")
	}
	first := opts.First
	if first == "" {
		first = opts.Catalog.First()
	}
	if _, err := opts.Catalog.Get(first); err != nil {
		return nil, fmt.Errorf("play: first map: %w", err)
	}

	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w, opts.Spec, cp.Vector{})
	if err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}
	camera, err := entity.NewCamera(w, cp.Vector{})
	if err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}

	return &Runtime{
		world: w,
		frame: &system.Frame{
			Session:  scene.NewSession(first),
			Triggers: &scene.TriggerQueue{},
			Director: scene.NewDirector(scene.ConfigFromSpec(opts.Spec)),
			Catalog:  opts.Catalog,
			Maps:     opts.Maps,
			Spec:     opts.Spec,
			View:     maps.Viewport{Width: float64(opts.Spec.Window.Width), Height: float64(opts.Spec.Window.Height)},
		},
		sched:  system.Pipeline(opts.Audio),
		first:  first,
		player: player,
		camera: camera,
	}, nil
}

// Step runs one frame of dt with the given input.
func (r *Runtime) Step(dt time.Duration, in system.Intent) {
	if dt < 0 {
		dt = 0
	}
	r.frame.Intent = in
	r.frame.Now += dt
	r.frame.DT = dt.Seconds()
	r.sched.Update(r.world, r.frame)
}

// Retry starts a new game on the first map. The map is reloaded even when it
// is already the current one.
func (r *Runtime) Retry() {
	entity.DespawnCollectibles(r.world)
	r.frame.Triggers.Reset()
	r.frame.Session.Reset(r.first)
	log.Printf("play: retry on %s", r.first)
}

// ApplyConfig swaps in new tuning between frames. Window size is not
// changed on the fly; the caller's spec is left untouched.
func (r *Runtime) ApplyConfig(spec *prefabs.GameSpec) {
	if spec == nil {
		return
	}
	next := *spec
	next.Window = r.frame.Spec.Window
	r.frame.Spec = &next
	r.frame.Director.SetConfig(scene.ConfigFromSpec(&next))
	log.Printf("play: applied new tuning")
}

// SetBackgroundPaused pauses or resumes the background tracks, for example
// while the window is out of focus.
func (r *Runtime) SetBackgroundPaused(paused bool) {
	op := component.BackgroundResume
	if paused {
		op = component.BackgroundPause
	}
	system.RequestChannel(r.world, op)
}

func (r *Runtime) World() *ecs.World       { return r.world }
func (r *Runtime) Frame() *system.Frame    { return r.frame }
func (r *Runtime) Session() *scene.Session { return r.frame.Session }
func (r *Runtime) Now() time.Duration      { return r.frame.Now }

// Map returns the descriptor of the live map.
func (r *Runtime) Map() *maps.Descriptor {
	desc, _ := r.frame.Descriptor()
	return desc
}

func (r *Runtime) PlayerPosition() cp.Vector {
	pos, _ := entity.Position(r.world, r.player)
	return pos
}

func (r *Runtime) CameraPosition() cp.Vector {
	pos, _ := entity.Position(r.world, r.camera)
	return pos
}

// PlayerCell is the grid cell under the player.
func (r *Runtime) PlayerCell() (column, row int) {
	desc := r.Map()
	if desc == nil {
		return 0, 0
	}
	cell := movement.CellAt(r.PlayerPosition(), desc.TileSize)
	return cell.Column, cell.Row
}

// WallOpen reports whether the wall of the i-th button/wall pair on the live
// map has been opened.
func (r *Runtime) WallOpen(i int) bool {
	open := false
	ecs.ForEach(r.world, component.ButtonWallComponent.Kind(), func(e ecs.Entity, bw *component.ButtonWall) {
		if bw.Role == component.RoleWall && bw.Pair == i {
			open = bw.Activated && !ecs.Has(r.world, e, component.CollideComponent.Kind())
		}
	})
	return open
}
