package levels

import (
	"context"
	"testing"
	"testing/fstest"

	"golang.org/x/tools/txtar"

	"github.com/milk9111/thechase/tilegrid"
)

const fixtures = `
Tiled exports trimmed down to what the loader reads.

-- tiny.json --
{
 "width": 3, "height": 2, "tilewidth": 64, "tileheight": 64,
 "layers": [
  {"name": "floor", "type": "tilelayer", "width": 3, "height": 2, "data": [1, 1, 1, 1, 1, 2]},
  {"name": "marker", "type": "objectgroup"},
  {"name": "walls", "type": "tilelayer", "width": 3, "height": 2, "data": [2147483651, 0, 0, 0, 0, 0],
   "properties": [{"name": "collide", "type": "bool", "value": true}]},
  {"name": "decor", "type": "tilelayer", "width": 3, "height": 2, "data": [0, 9],
   "properties": [{"name": "collide", "type": "string", "value": "yes"}]}
 ],
 "tilesets": [{"firstgid": 1, "name": "terrain", "tiles": [
  {"id": 0, "image": "../textures/grass.png"},
  {"id": 1, "image": "../textures/hole.png"},
  {"id": 2, "image": "../../assets/textures/tree.png"}
 ]}]
}
-- broken.json --
{"width": 3, "height": 2, "layers": [
-- flat.json --
{"width": 0, "height": 2, "layers": []}
`

func fixtureFS(t *testing.T) fstest.MapFS {
	t.Helper()
	archive := txtar.Parse([]byte(fixtures))
	fsys := fstest.MapFS{}
	for _, f := range archive.Files {
		fsys[f.Name] = &fstest.MapFile{Data: f.Data}
	}
	if len(fsys) != 3 {
		t.Fatalf("expected 3 fixture files, got %d", len(fsys))
	}
	return fsys
}

func TestSourceFromTiledMap(t *testing.T) {
	m, err := LoadMapFromFS(fixtureFS(t), "tiny")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	src := m.Source()

	if src.Columns != 3 || src.Rows != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", src.Columns, src.Rows)
	}
	if len(src.Layers) != 3 {
		t.Fatalf("expected object layers to be skipped, got %d layers", len(src.Layers))
	}
	if !src.Colliding[1] || src.Colliding[0] || src.Colliding[2] {
		t.Fatalf("colliding = %v, want only layer 1", src.Colliding)
	}
	if got := src.Layers[1][0][0]; got != 3 {
		t.Fatalf("flip bits not masked: gid %d", got)
	}
	if got := src.Paths[3]; got != "textures/tree.png" {
		t.Fatalf("path = %q", got)
	}

	grid := tilegrid.Build(src)
	if got := grid.At(0, tilegrid.Cell{Column: 2, Row: 0}).AssetPath; got != "textures/hole.png" {
		t.Fatalf("bottom-right floor = %q, want hole", got)
	}
	cells := grid.CollisionCells()
	if len(cells) != 1 || cells[0] != (tilegrid.Cell{Column: 0, Row: 1}) {
		t.Fatalf("collision cells = %v", cells)
	}
	if !grid.At(2, tilegrid.Cell{Column: 1, Row: 1}).Empty() {
		t.Fatalf("unknown gid should render empty")
	}
}

func TestLoadMapErrors(t *testing.T) {
	fsys := fixtureFS(t)
	tests := []struct {
		name string
		file string
	}{
		{name: "missing", file: "nope.json"},
		{name: "truncated json", file: "broken.json"},
		{name: "zero width", file: "flat.json"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadMapFromFS(fsys, tc.file); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestPreload(t *testing.T) {
	b := Preload(context.Background(), fixtureFS(t), "tiny", "levels/tiny.json")
	if err := b.Wait(); err != nil {
		t.Fatalf("preload: %v", err)
	}
	if !b.Done() {
		t.Fatalf("expected batch to be done after Wait")
	}
	if _, ok := b.Get("tiny"); !ok {
		t.Fatalf("tiny not loaded")
	}
	if _, ok := b.Get("levels/tiny.json"); !ok {
		t.Fatalf("prefixed name not loaded")
	}

	failed := Preload(context.Background(), fixtureFS(t), "tiny", "broken")
	if err := failed.Wait(); err == nil {
		t.Fatalf("expected preload error for broken map")
	}
}

func TestEmbeddedMapsDecode(t *testing.T) {
	for _, name := range []string{"ground", "dirt", "stone"} {
		t.Run(name, func(t *testing.T) {
			m, err := LoadMapFromFS(LevelsFS, name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			grid := tilegrid.Build(m.Source())
			if grid.Columns != 20 || grid.Rows != 20 {
				t.Fatalf("dimensions = %dx%d", grid.Columns, grid.Rows)
			}
			if len(grid.CollisionCells()) == 0 {
				t.Fatalf("expected a colliding layer")
			}
		})
	}
}
