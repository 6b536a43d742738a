package play

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/ecs/system"
	"github.com/milk9111/thechase/scene"
)

// FrameDT is the fixed step used when the runtime is driven without a window.
const FrameDT = time.Second / 60

var (
	ErrTimeout = errors.New("play: timed out")
	ErrNoPath  = errors.New("play: no path")
)

// Advance runs idle frames for d of game time.
func (r *Runtime) Advance(d time.Duration) {
	for end := r.frame.Now + d; r.frame.Now < end; {
		r.Step(FrameDT, system.Intent{})
	}
}

// Skip runs one frame with the skip input held.
func (r *Runtime) Skip() {
	r.Step(FrameDT, system.Intent{Skip: true})
}

func (r *Runtime) idle() bool {
	return r.frame.MapReady() && !r.frame.Session.Frozen() && r.frame.Triggers.Pending() == nil
}

// WaitIdle runs idle frames until the live map is spawned and no scene is
// active or pending, or until limit passes.
func (r *Runtime) WaitIdle(limit time.Duration) error {
	for end := r.frame.Now + limit; !r.idle(); {
		if r.frame.Now >= end {
			return fmt.Errorf("%w waiting for %v to finish", ErrTimeout, r.frame.Session.Active)
		}
		r.Step(FrameDT, system.Intent{})
	}
	return nil
}

// WaitMap runs idle frames until the session's map is spawned.
func (r *Runtime) WaitMap(limit time.Duration) error {
	for end := r.frame.Now + limit; !r.frame.MapReady(); {
		if r.frame.Now >= end {
			return fmt.Errorf("%w loading %s", ErrTimeout, r.frame.Session.Map)
		}
		r.Step(FrameDT, system.Intent{})
	}
	return nil
}

// WalkTo steers the player to target along a free path until target is
// reached, a scene starts or limit passes. It reports the scene that
// interrupted the walk, if any. When until names scene kinds, other scenes
// are waited out and the walk carries on afterwards.
func (r *Runtime) WalkTo(target cp.Vector, limit time.Duration, until ...scene.Kind) (scene.Scene, error) {
	var pilot system.Autopilot
	for end := r.frame.Now + limit; ; {
		if r.frame.Now >= end {
			return nil, fmt.Errorf("%w walking to %v from %v", ErrTimeout, target, r.PlayerPosition())
		}
		if kind, ok := r.frame.Session.ActiveKind(); ok {
			if len(until) == 0 || slices.Contains(until, kind) {
				return r.frame.Session.Active, nil
			}
			r.Step(FrameDT, system.Intent{})
			continue
		}
		if !r.frame.MapReady() {
			r.Step(FrameDT, system.Intent{})
			continue
		}
		in, ok := pilot.Steer(r.world, r.frame, target)
		if !ok {
			if r.PlayerPosition().Distance(target) > 1 {
				return nil, fmt.Errorf("%w to %v from %v", ErrNoPath, target, r.PlayerPosition())
			}
			return nil, nil
		}
		r.Step(FrameDT, in)
	}
}

// ButtonPosition returns where the i-th button of the live map sits.
func (r *Runtime) ButtonPosition(i int) (cp.Vector, bool) {
	var (
		pos   cp.Vector
		found bool
	)
	ecs.ForEach2(r.world, component.ButtonWallComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bw *component.ButtonWall, t *component.Transform) {
		if bw.Role == component.RoleButton && bw.Pair == i {
			pos, found = cp.Vector{X: t.X, Y: t.Y}, true
		}
	})
	return pos, found
}
