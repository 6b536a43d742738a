package system

import (
	"log"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/ecs/entity"
	"github.com/milk9111/thechase/scene"
)

// SceneSystem evaluates the running scene and applies what the director asks
// for. A skip request ends the scene this frame.
type SceneSystem struct{}

func NewSceneSystem() *SceneSystem {
	return &SceneSystem{}
}

func (ss *SceneSystem) Update(w *ecs.World, f *Frame) {
	if ss == nil || w == nil || f == nil || f.Director == nil || !f.Session.Frozen() {
		return
	}
	var up scene.Update
	if f.Intent.Skip {
		up = f.Director.Skip(f.Session)
	} else {
		up = f.Director.Advance(f.Session, f.Now)
	}

	for _, e := range up.Effects {
		ss.apply(w, f, e)
	}
	applyPose(w, up.Pose)

	switch {
	case up.Skipped:
		log.Printf("scene: skip %s", up.Scene.Kind())
	case up.Finished:
		log.Printf("scene: finish %s", up.Scene.Kind())
	}
}

func (ss *SceneSystem) apply(w *ecs.World, f *Frame, e scene.Effect) {
	switch e.Kind {
	case scene.PlaySound:
		RequestSound(w, e.Sound)
	case scene.PauseBackground:
		RequestChannel(w, component.BackgroundPause)
	case scene.PlayBackground:
		RequestBackground(w, e.Tracks...)
	case scene.StopEffects:
		RequestChannel(w, component.EffectsStop)
	case scene.PressButton:
		activate(w, e.Target, f.elements().ButtonDown)
	case scene.OpenWall:
		if activate(w, e.Target, f.elements().WallDown) {
			ecs.Remove(w, e.Target, component.CollideComponent.Kind())
		}
	case scene.DespawnCollectible:
		entity.DespawnCollectibles(w)
	case scene.SnapCameraToCollectible:
		acorn, ok := ecs.First(w, component.CollectibleTagComponent.Kind())
		if !ok {
			return
		}
		pos, _ := entity.Position(w, acorn)
		if cam, ok := ecs.First(w, component.CameraTagComponent.Kind()); ok {
			if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
				t.X, t.Y = pos.X, pos.Y
			}
		}
	case scene.SwapMap:
		log.Printf("scene: swap map %s -> %s", f.Session.Map, e.Map)
		f.Session.SwapMap(e.Map)
	case scene.SetWon:
		log.Printf("scene: game won")
		f.Session.Won = true
	}
}

// activate marks a button or wall as used and swaps its texture. It reports
// false when the entity is gone.
func activate(w *ecs.World, e ecs.Entity, texture string) bool {
	bw, ok := ecs.Get(w, e, component.ButtonWallComponent.Kind())
	if !ok {
		return false
	}
	bw.Activated = true
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && texture != "" {
		sprite.Texture = texture
	}
	return true
}

// applyPose writes a scene pose. Targets that do not exist are skipped.
func applyPose(w *ecs.World, pose scene.Pose) {
	if cam, ok := ecs.First(w, component.CameraTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
			if pose.Camera != nil {
				t.X, t.Y = pose.Camera.X, pose.Camera.Y
			}
			if pose.CameraScale > 0 {
				t.ScaleX, t.ScaleY = pose.CameraScale, pose.CameraScale
			}
		}
	}
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			if pose.Actor != nil {
				t.X, t.Y = pose.Actor.X, pose.Actor.Y
			}
			if pose.ActorScale > 0 {
				t.ScaleX, t.ScaleY = pose.ActorScale, pose.ActorScale
			}
		}
	}
	if pose.Collectible == nil {
		return
	}
	if acorn, ok := ecs.First(w, component.CollectibleTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, acorn, component.TransformComponent.Kind()); ok {
			p := pose.Collectible
			t.X, t.Y = p.Position.X, p.Position.Y
			t.Rotation = p.Rotation
			t.ScaleX, t.ScaleY = p.Scale, p.Scale
		}
	}
}
