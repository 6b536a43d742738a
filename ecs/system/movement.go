package system

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/ecs/entity"
	"github.com/milk9111/thechase/movement"
	"github.com/milk9111/thechase/scene"
)

// MovementSystem walks the player by the frame's intent and raises the goal
// scene when the player reaches the hole.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (ms *MovementSystem) Update(w *ecs.World, f *Frame) {
	if ms == nil || w == nil || f == nil {
		return
	}
	desc, ok := f.Descriptor()
	if !ok {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	var intent cp.Vector
	if f.Intent.HasMove {
		intent = f.Intent.Move
	}
	res := movement.Step(movement.Input{
		Position:   entityVec(t),
		Intent:     intent,
		Speed:      f.speed(),
		DT:         f.DT,
		TileSize:   desc.TileSize,
		Columns:    desc.Dimensions.Columns,
		Rows:       desc.Dimensions.Rows,
		Blocked:    movement.NewCellSet(entity.CollisionCells(w)...),
		Goal:       desc.GoalPosition(),
		GoalRadius: f.goalRadius(),
		Frozen:     !f.Playable(),
	})
	if !res.Moved {
		return
	}
	t.X, t.Y = res.Position.X, res.Position.Y

	if !res.ReachedGoal || f.Triggers == nil {
		return
	}
	if next, ok := desc.NextMap(); ok {
		log.Printf("movement: goal reached on %s, next %s", desc.ID, next)
		f.Triggers.Push(scene.MapTransition{
			CameraFrom: res.Position,
			CameraTo:   desc.GoalPosition(),
			Target:     next,
		})
		return
	}
	log.Printf("movement: goal reached on %s, last map", desc.ID)
	f.Triggers.Push(scene.Won{})
}

func entityVec(t *component.Transform) cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}
