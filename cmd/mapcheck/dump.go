package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/thechase/ecs/system"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/movement"
	"github.com/milk9111/thechase/tilegrid"
)

// dump draws the collision grid of a map top row first, the way the editor
// shows it. Anchors win over walls so a misplaced anchor is visible.
func dump(desc *maps.Descriptor, grid *tilegrid.Grid) string {
	marks := map[tilegrid.Cell]byte{}
	for _, c := range grid.CollisionCells() {
		marks[c] = '#'
	}
	for _, el := range desc.Elements {
		marks[desc.Cell(el.Button)] = 'B'
		marks[desc.Cell(el.Wall)] = 'W'
	}
	marks[desc.Cell(desc.Collectible)] = 'C'
	marks[desc.Cell(desc.Goal)] = 'G'
	marks[desc.Cell(desc.Start)] = 'S'

	var b strings.Builder
	for row := desc.Dimensions.Rows - 1; row >= 0; row-- {
		for col := 0; col < desc.Dimensions.Columns; col++ {
			if m, ok := marks[tilegrid.Cell{Column: col, Row: row}]; ok {
				b.WriteByte(m)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// reachability checks that every button can be reached with all walls closed
// and the goal with all walls open.
func reachability(desc *maps.Descriptor, grid *tilegrid.Grid) []error {
	open := movement.NewCellSet(grid.CollisionCells()...)
	closed := movement.NewCellSet(grid.CollisionCells()...)
	for _, el := range desc.Elements {
		closed.Add(desc.Cell(el.Wall))
	}

	start := desc.Cell(desc.Start)
	var errs []error
	if open.Has(start) {
		errs = append(errs, fmt.Errorf("%s: start is inside a wall", desc.ID))
	}
	for i, el := range desc.Elements {
		if system.FindPath(start, desc.Cell(el.Button), closed, desc.Dimensions) == nil {
			errs = append(errs, fmt.Errorf("%s: button %d unreachable from start", desc.ID, i))
		}
	}
	if system.FindPath(start, desc.Cell(desc.Goal), open, desc.Dimensions) == nil {
		errs = append(errs, fmt.Errorf("%s: goal unreachable from start", desc.ID))
	}
	return errs
}

// missingTextures lists the tile textures of a map that have no asset behind
// them. Each path is reported once.
func missingTextures(id maps.ID, grid *tilegrid.Grid, has func(string) bool) []error {
	seen := map[string]bool{}
	var errs []error
	for _, layer := range grid.Layers {
		for _, tile := range layer {
			if tile.Empty() || seen[tile.AssetPath] {
				continue
			}
			seen[tile.AssetPath] = true
			if !has(tile.AssetPath) {
				errs = append(errs, fmt.Errorf("%s: missing texture %q", id, tile.AssetPath))
			}
		}
	}
	return errs
}
