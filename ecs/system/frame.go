// Package system holds the per-frame passes of the game. Systems are headless:
// drawing lives in ecs/render and device input is turned into an Intent by the
// caller.
package system

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/levels"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/movement"
	"github.com/milk9111/thechase/prefabs"
	"github.com/milk9111/thechase/scene"
	"github.com/milk9111/thechase/tilegrid"
)

// Intent is the player's input for one frame.
type Intent struct {
	Move    cp.Vector
	HasMove bool
	Skip    bool
}

// MapSource hands out decoded maps by file name. *levels.Batch satisfies it.
type MapSource interface {
	Get(name string) (*levels.Map, bool)
}

// Frame is the context every system receives. It carries the session
// explicitly; nothing in this package keeps game state in globals.
type Frame struct {
	Session  *scene.Session
	Triggers *scene.TriggerQueue
	Director *scene.Director
	Catalog  *maps.Catalog
	Maps     MapSource
	Spec     *prefabs.GameSpec
	View     maps.Viewport

	// Loaded identifies the map version currently spawned in the world.
	Loaded tilegrid.Key

	Intent Intent
	// Now is the frame clock; DT the seconds since the previous frame.
	Now time.Duration
	DT  float64
}

// Descriptor returns the catalog entry of the live map.
func (f *Frame) Descriptor() (*maps.Descriptor, bool) {
	if f == nil || f.Catalog == nil || f.Session == nil {
		return nil, false
	}
	desc, err := f.Catalog.Get(f.Session.Map)
	if err != nil {
		return nil, false
	}
	return desc, true
}

func (f *Frame) mapKey() tilegrid.Key {
	return tilegrid.Key{Map: string(f.Session.Map), Version: f.Session.MapVersion}
}

// MapReady reports whether the session's map is the one in the world.
func (f *Frame) MapReady() bool {
	return f != nil && f.Session != nil && f.Loaded == f.mapKey()
}

// Playable reports whether the player may act this frame.
func (f *Frame) Playable() bool {
	return f != nil && f.Session != nil && !f.Session.Frozen() && !f.Session.Won
}

func (f *Frame) elements() prefabs.ElementTexturesSpec {
	if f.Spec == nil {
		return prefabs.ElementTexturesSpec{}
	}
	return f.Spec.Elements
}

func (f *Frame) speed() float64 {
	if f.Spec != nil && f.Spec.Player.Speed > 0 {
		return f.Spec.Player.Speed
	}
	return movement.DefaultSpeed
}

func (f *Frame) goalRadius() float64 {
	if f.Spec != nil && f.Spec.Player.GoalRadius > 0 {
		return f.Spec.Player.GoalRadius
	}
	return movement.DefaultGoalRadius
}

func (f *Frame) buttonRadius() float64 {
	if f.Spec != nil && f.Spec.Player.ButtonRadius > 0 {
		return f.Spec.Player.ButtonRadius
	}
	return defaultButtonRadius
}

// Pipeline is the fixed frame order.
func Pipeline(audio AudioSink) *ecs.Scheduler[*Frame] {
	return ecs.NewScheduler[*Frame](
		NewMapLoadSystem(),
		NewInteractSystem(),
		NewMovementSystem(),
		NewCameraSystem(),
		NewSceneSystem(),
		NewTriggerSystem(),
		NewAudioSystem(audio),
	)
}
