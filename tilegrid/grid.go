// Package tilegrid derives the layered tile grid of a map from raw editor data.
package tilegrid

import "sort"

// Tile is one drawable cell. An empty AssetPath means nothing is drawn.
type Tile struct {
	AssetPath string
}

func (t Tile) Empty() bool { return t.AssetPath == "" }

// Source is the raw map data handed over by the map loader: one tile-id matrix
// per layer, stored top row first the way the editor saves it.
type Source struct {
	Columns   int
	Rows      int
	Layers    [][][]uint32
	Paths     map[uint32]string
	Colliding map[int]bool
}

// Cell is a grid coordinate; row 0 is the bottom row.
type Cell struct {
	Column int
	Row    int
}

// Grid is the derived, immutable tile grid of one loaded map.
type Grid struct {
	Layers    [][]Tile
	Colliding []bool
	Rows      int
	Columns   int
}

// Build derives a Grid from src. Rows are inverted so row 0 is the bottom of
// the map. Ids missing from the tileset table, and cells missing from short
// matrices, become empty tiles.
func Build(src Source) *Grid {
	g := &Grid{
		Rows:      max(src.Rows, 0),
		Columns:   max(src.Columns, 0),
		Layers:    make([][]Tile, len(src.Layers)),
		Colliding: make([]bool, len(src.Layers)),
	}
	for li, matrix := range src.Layers {
		tiles := make([]Tile, g.Rows*g.Columns)
		for r := 0; r < g.Rows; r++ {
			if r >= len(matrix) {
				break
			}
			row := g.Rows - 1 - r
			for c := 0; c < g.Columns && c < len(matrix[r]); c++ {
				if path, ok := src.Paths[matrix[r][c]]; ok {
					tiles[row*g.Columns+c] = Tile{AssetPath: path}
				}
			}
		}
		g.Layers[li] = tiles
		g.Colliding[li] = src.Colliding[li]
	}
	return g
}

// InBounds reports whether the cell lies on the map.
func (g *Grid) InBounds(c Cell) bool {
	if g == nil {
		return false
	}
	return c.Column >= 0 && c.Row >= 0 && c.Column < g.Columns && c.Row < g.Rows
}

// At returns the tile of layer at the cell, or an empty tile when out of range.
func (g *Grid) At(layer int, c Cell) Tile {
	if !g.InBounds(c) || layer < 0 || layer >= len(g.Layers) {
		return Tile{}
	}
	return g.Layers[layer][c.Row*g.Columns+c.Column]
}

// CollisionCells lists every occupied cell of a colliding layer, bottom row
// first, without duplicates.
func (g *Grid) CollisionCells() []Cell {
	if g == nil {
		return nil
	}
	seen := make(map[Cell]struct{})
	for li, tiles := range g.Layers {
		if !g.Colliding[li] {
			continue
		}
		for i, t := range tiles {
			if t.Empty() {
				continue
			}
			seen[Cell{Column: i % g.Columns, Row: i / g.Columns}] = struct{}{}
		}
	}
	out := make([]Cell, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}
