package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/prefabs"
	"github.com/milk9111/thechase/tilegrid"
)

// MapEntities summarizes what LoadMapToWorld spawned.
type MapEntities struct {
	Tiles     int
	Colliders int
	Pairs     [][2]ecs.Entity
}

// ClearMap despawns every entity belonging to the current map.
func ClearMap(w *ecs.World) {
	ecs.ForEach(w, component.MapTileComponent.Kind(), func(e ecs.Entity, _ *component.MapTile) {
		ecs.DestroyEntity(w, e)
	})
	ecs.ForEach(w, component.ButtonWallComponent.Kind(), func(e ecs.Entity, _ *component.ButtonWall) {
		ecs.DestroyEntity(w, e)
	})
}

// LoadMapToWorld replaces the current map's entities with one entity per
// drawn tile of grid plus the descriptor's button/wall pairs. Tiles of
// colliding layers and closed walls carry a Collide component.
func LoadMapToWorld(w *ecs.World, grid *tilegrid.Grid, desc *maps.Descriptor, textures prefabs.ElementTexturesSpec) (MapEntities, error) {
	var out MapEntities
	if w == nil || grid == nil || desc == nil {
		return out, fmt.Errorf("map: load: missing world, grid or descriptor")
	}
	ClearMap(w)

	for li := range grid.Layers {
		for row := 0; row < grid.Rows; row++ {
			for col := 0; col < grid.Columns; col++ {
				cell := tilegrid.Cell{Column: col, Row: row}
				tile := grid.At(li, cell)
				if tile.Empty() {
					continue
				}
				e := ecs.CreateEntity(w)
				pos := cp.Vector{X: float64(col) * desc.TileSize, Y: float64(row) * desc.TileSize}
				if err := addSprite(w, e, tile.AssetPath, li, pos); err != nil {
					return out, fmt.Errorf("map: tile %d,%d: %w", col, row, err)
				}
				if err := ecs.Add(w, e, component.MapTileComponent.Kind(), &component.MapTile{Column: col, Row: row, Layer: li}); err != nil {
					return out, fmt.Errorf("map: tile %d,%d: add map tile: %w", col, row, err)
				}
				out.Tiles++
				if !grid.Colliding[li] {
					continue
				}
				if err := ecs.Add(w, e, component.CollideComponent.Kind(), &component.Collide{Column: col, Row: row}); err != nil {
					return out, fmt.Errorf("map: tile %d,%d: add collide: %w", col, row, err)
				}
				out.Colliders++
			}
		}
	}

	for i, pair := range desc.Elements {
		button, err := newElement(w, desc, i, component.RoleButton, pair.Button, textures.Button)
		if err != nil {
			return out, err
		}
		wall, err := newElement(w, desc, i, component.RoleWall, pair.Wall, textures.Wall)
		if err != nil {
			return out, err
		}
		cell := desc.Cell(pair.Wall)
		if err := ecs.Add(w, wall, component.CollideComponent.Kind(), &component.Collide{Column: cell.Column, Row: cell.Row}); err != nil {
			return out, fmt.Errorf("map: wall %d: add collide: %w", i, err)
		}
		out.Colliders++

		if bw, ok := ecs.Get(w, button, component.ButtonWallComponent.Kind()); ok {
			bw.Partner = uint64(wall)
		}
		if bw, ok := ecs.Get(w, wall, component.ButtonWallComponent.Kind()); ok {
			bw.Partner = uint64(button)
		}
		out.Pairs = append(out.Pairs, [2]ecs.Entity{button, wall})
	}
	return out, nil
}

func newElement(w *ecs.World, desc *maps.Descriptor, pair int, role component.ElementRole, slot maps.Slot, texture string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addSprite(w, e, texture, LayerElements, desc.PositionFromSlot(slot)); err != nil {
		return 0, fmt.Errorf("map: %s %d: %w", role, pair, err)
	}
	cell := desc.Cell(slot)
	if err := ecs.Add(w, e, component.ButtonWallComponent.Kind(), &component.ButtonWall{
		Role:   role,
		Pair:   pair,
		Column: cell.Column,
		Row:    cell.Row,
	}); err != nil {
		return 0, fmt.Errorf("map: %s %d: add button wall: %w", role, pair, err)
	}
	return e, nil
}

// Partner resolves the other half of a button/wall pair. It reports false
// when the partner has been despawned.
func Partner(w *ecs.World, bw *component.ButtonWall) (ecs.Entity, bool) {
	if bw == nil {
		return 0, false
	}
	e := ecs.Entity(bw.Partner)
	return e, ecs.IsAlive(w, e)
}

// CollisionCells gathers every cell currently carrying a Collide component.
func CollisionCells(w *ecs.World) []tilegrid.Cell {
	var out []tilegrid.Cell
	ecs.ForEach(w, component.CollideComponent.Kind(), func(_ ecs.Entity, c *component.Collide) {
		out = append(out, tilegrid.Cell{Column: c.Column, Row: c.Row})
	})
	return out
}
