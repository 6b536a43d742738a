package system

import (
	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/ecs/entity"
	"github.com/milk9111/thechase/scene"
)

const defaultButtonRadius = 32.0

// InteractSystem raises ActivateButton when the player stands on a button that
// has not been pressed yet.
type InteractSystem struct{}

func NewInteractSystem() *InteractSystem {
	return &InteractSystem{}
}

func (is *InteractSystem) Update(w *ecs.World, f *Frame) {
	if w == nil || !f.Playable() || f.Triggers == nil {
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
	pos, ok := entity.Position(w, player)
	if !ok {
		return
	}

	radius := f.buttonRadius()
	ecs.ForEach2(w, component.ButtonWallComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bw *component.ButtonWall, t *component.Transform) {
		if bw.Role != component.RoleButton || bw.Activated {
			return
		}
		if pos.Distance(entityVec(t)) >= radius {
			return
		}
		wall, ok := entity.Partner(w, bw)
		if !ok {
			return
		}
		wallPos, _ := entity.Position(w, wall)
		f.Triggers.Push(scene.ActivateButton{
			Button:     e,
			Wall:       wall,
			CameraFrom: desc.CameraPosition(pos, f.View),
			CameraTo:   desc.CameraPosition(wallPos, f.View),
		})
	})
}
