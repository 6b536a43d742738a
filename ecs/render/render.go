// Package render draws the ECS world with ebiten.
package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
)

type RenderSystem struct {
	camEntity ecs.Entity
	drawn     int
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawable struct {
	e     ecs.Entity
	t     *component.Transform
	s     *component.Sprite
	layer int
}

// Draw renders every sprite relative to the camera. World Y grows upward and
// sprites are centred on their transform; the camera scale is the size of the
// visible area, so a camera scale of 0.5 draws everything twice as large.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraTagComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY, zoom := 0.0, 0.0, 1.0
	if cam, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX, camY = cam.X, cam.Y
		if cam.ScaleX > 0 {
			zoom = 1 / cam.ScaleX
		}
	}

	var items []drawable
	ecs.ForEach3(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), component.RenderLayerComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite, l *component.RenderLayer) {
		items = append(items, drawable{e: e, t: t, s: s, layer: l.Index})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	bounds := screen.Bounds()
	halfW, halfH := float64(bounds.Dx())/2, float64(bounds.Dy())/2
	r.drawn = 0
	for _, it := range items {
		img := Texture(it.s.Texture)
		if img == nil {
			continue
		}
		sx, sy := it.t.ScaleX, it.t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(img.Bounds().Dx())/2, -float64(img.Bounds().Dy())/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(-it.t.Rotation)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(halfW+(it.t.X-camX)*zoom, halfH-(it.t.Y-camY)*zoom)
		screen.DrawImage(img, op)
		r.drawn++
	}
}

// Drawn is the number of sprites drawn by the last Draw call.
func (r *RenderSystem) Drawn() int { return r.drawn }
