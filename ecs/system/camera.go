package system

import (
	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
)

// CameraSystem keeps the camera on the player, clamped to the map. Scenes own
// the camera while they run and after the game is won.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World, f *Frame) {
	if w == nil || !f.Playable() {
		return
	}
	if !ecs.IsAlive(w, cs.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraTagComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}
	if !ecs.IsAlive(w, cs.targetEntity) {
		if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			cs.targetEntity = player
		}
	}

	desc, ok := f.Descriptor()
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pos := desc.CameraPosition(entityVec(target), f.View)
	cam.X, cam.Y = pos.X, pos.Y
}
