package system

import (
	"log"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/ecs/entity"
	"github.com/milk9111/thechase/scene"
	"github.com/milk9111/thechase/tilegrid"
)

// MapLoadSystem keeps the world in step with the session's map. The grid is
// derived once per map version; until the raw map has been decoded the system
// waits and tries again next frame.
type MapLoadSystem struct {
	cache tilegrid.Cache
}

func NewMapLoadSystem() *MapLoadSystem {
	return &MapLoadSystem{}
}

func (ms *MapLoadSystem) Update(w *ecs.World, f *Frame) {
	if ms == nil || w == nil || f == nil || f.Session == nil {
		return
	}
	desc, ok := f.Descriptor()
	if !ok {
		return
	}
	key := f.mapKey()
	grid, rebuilt := ms.cache.Resolve(key, func() (tilegrid.Source, bool) {
		if f.Maps == nil {
			return tilegrid.Source{}, false
		}
		m, ok := f.Maps.Get(desc.File)
		if !ok {
			return tilegrid.Source{}, false
		}
		return m.Source(), true
	})
	if !rebuilt {
		return
	}

	spawned, err := entity.LoadMapToWorld(w, grid, desc, f.elements())
	if err != nil {
		log.Printf("map: load %s: %v", desc.ID, err)
		ms.cache.Invalidate()
		return
	}
	f.Loaded = key

	start := desc.StartPosition()
	camFrom := desc.CameraPosition(start, f.View)
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		entity.SetTransform(w, player, start, 1)
	}
	if cam, ok := ecs.First(w, component.CameraTagComponent.Kind()); ok {
		entity.SetTransform(w, cam, camFrom, 1)
	}
	if f.Spec != nil {
		if _, err := entity.NewCollectible(w, f.Spec, desc.CollectiblePosition()); err != nil {
			log.Printf("map: load %s: %v", desc.ID, err)
		}
	}
	if len(desc.Background) > 0 {
		RequestBackground(w, desc.Background...)
	}

	_, falls := desc.NextMap()
	if f.Triggers != nil {
		f.Triggers.Push(scene.Intro{
			CameraFrom:       camFrom,
			CameraTo:         desc.CameraPosition(desc.GoalPosition(), f.View),
			Collectible:      desc.CollectiblePosition(),
			Goal:             desc.GoalPosition(),
			CollectibleFalls: falls,
		})
	}
	log.Printf("map: loaded %s v%d: %d tiles, %d colliders, %d button/wall pairs",
		desc.ID, key.Version, spawned.Tiles, spawned.Colliders, len(spawned.Pairs))
}
