package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/prefabs"
)

// Draw order. Map layers use their own index, so these sit above any map.
const (
	LayerElements    = 10
	LayerCollectible = 11
	LayerPlayer      = 12
)

func NewPlayer(w *ecs.World, spec *prefabs.GameSpec, pos cp.Vector) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := addSprite(w, player, spec.Player.Texture, LayerPlayer, pos); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return player, nil
}

func NewCamera(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	return camera, nil
}

// NewCollectible spawns the acorn. Any previous one is removed first; there is
// never more than one.
func NewCollectible(w *ecs.World, spec *prefabs.GameSpec, pos cp.Vector) (ecs.Entity, error) {
	DespawnCollectibles(w)
	acorn := ecs.CreateEntity(w)
	if err := ecs.Add(w, acorn, component.CollectibleTagComponent.Kind(), &component.CollectibleTag{}); err != nil {
		return 0, fmt.Errorf("collectible: add tag: %w", err)
	}
	if err := addSprite(w, acorn, spec.Collectible.Texture, LayerCollectible, pos); err != nil {
		return 0, fmt.Errorf("collectible: %w", err)
	}
	return acorn, nil
}

// DespawnCollectibles removes every collectible and reports how many there were.
func DespawnCollectibles(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.CollectibleTagComponent.Kind(), func(e ecs.Entity, _ *component.CollectibleTag) {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	})
	return n
}

// SetTransform moves e to pos with a uniform scale and no rotation.
func SetTransform(w *ecs.World, e ecs.Entity, pos cp.Vector, scale float64) bool {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	t.X, t.Y = pos.X, pos.Y
	t.ScaleX, t.ScaleY = scale, scale
	t.Rotation = 0
	return true
}

// Position returns the world position of e.
func Position(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return cp.Vector{X: t.X, Y: t.Y}, true
}

func addSprite(w *ecs.World, e ecs.Entity, texture string, layer int, pos cp.Vector) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      pos.X,
		Y:      pos.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Texture: texture}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	return nil
}
