package maps

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/common"
)

// Viewport is the visible area in world units.
type Viewport struct {
	Width  float64
	Height float64
}

// CameraPosition clamps a camera centre so the view never leaves the map. On an
// axis where the map is smaller than the viewport the camera sits at the map's
// midpoint instead.
func (d *Descriptor) CameraPosition(p cp.Vector, view Viewport) cp.Vector {
	half := d.TileSize / 2
	return cp.Vector{
		X: clampAxis(p.X, view.Width/2-half, float64(d.Dimensions.Columns)*d.TileSize-view.Width/2-half, d.Dimensions.Columns, d.TileSize),
		Y: clampAxis(p.Y, view.Height/2-half, float64(d.Dimensions.Rows)*d.TileSize-view.Height/2-half, d.Dimensions.Rows, d.TileSize),
	}
}

func clampAxis(v, lo, hi float64, tiles int, tileSize float64) float64 {
	if lo < hi {
		return common.Clamp(v, lo, hi)
	}
	return float64(tiles-1) * tileSize / 2
}
