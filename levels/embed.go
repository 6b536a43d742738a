package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/milk9111/thechase/tilegrid"
)

//go:embed *.json
var LevelsFS embed.FS

// Tiled stores flip/rotation flags in the top bits of a gid.
const gidMask = 0x0FFFFFFF

// Map is the subset of the Tiled JSON map format the game reads.
type Map struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	TileWidth  int       `json:"tilewidth"`
	TileHeight int       `json:"tileheight"`
	Layers     []Layer   `json:"layers"`
	Tilesets   []Tileset `json:"tilesets"`
}

type Layer struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Data       []uint32   `json:"data"`
	Properties []Property `json:"properties,omitempty"`
}

type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type Tileset struct {
	FirstGID uint32        `json:"firstgid"`
	Name     string        `json:"name"`
	Tiles    []TilesetTile `json:"tiles"`
}

type TilesetTile struct {
	ID    uint32 `json:"id"`
	Image string `json:"image"`
}

// Bool returns the named boolean property. Non-boolean values read as false.
func (l Layer) Bool(name string) bool {
	for _, p := range l.Properties {
		if p.Name != name {
			continue
		}
		b, ok := p.Value.(bool)
		return ok && b
	}
	return false
}

// Decode parses a Tiled JSON map.
func Decode(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal map: %w", err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("unmarshal map: bad dimensions %dx%d", m.Width, m.Height)
	}
	return &m, nil
}

// LoadMapFromFS reads and decodes one map file.
func LoadMapFromFS(fsys fs.FS, name string) (*Map, error) {
	data, err := fs.ReadFile(fsys, cleanMapPath(name))
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// Exists reports whether a map file is embedded.
func Exists(name string) bool {
	_, err := fs.Stat(LevelsFS, cleanMapPath(name))
	return err == nil
}

// Source converts the map into the raw form the tile grid is derived from.
// Only tile layers take part; a layer collides when it carries collide=true.
func (m *Map) Source() tilegrid.Source {
	src := tilegrid.Source{
		Columns:   m.Width,
		Rows:      m.Height,
		Paths:     make(map[uint32]string),
		Colliding: make(map[int]bool),
	}
	for _, set := range m.Tilesets {
		for _, tile := range set.Tiles {
			if tile.Image == "" {
				continue
			}
			src.Paths[set.FirstGID+tile.ID] = cleanAssetPath(tile.Image)
		}
	}
	for _, layer := range m.Layers {
		if layer.Type != "" && layer.Type != "tilelayer" {
			continue
		}
		rows := make([][]uint32, m.Height)
		for r := range rows {
			row := make([]uint32, m.Width)
			for c := range row {
				if i := r*m.Width + c; i < len(layer.Data) {
					row[c] = layer.Data[i] & gidMask
				}
			}
			rows[r] = row
		}
		if layer.Bool("collide") {
			src.Colliding[len(src.Layers)] = true
		}
		src.Layers = append(src.Layers, rows)
	}
	return src
}

func cleanMapPath(name string) string {
	s := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	s = strings.TrimPrefix(s, "levels/")
	if path.Ext(s) == "" {
		s += ".json"
	}
	return s
}

// cleanAssetPath turns tileset image paths, which Tiled stores relative to the
// map file ("../textures/x.png"), into asset-relative keys ("textures/x.png").
func cleanAssetPath(p string) string {
	s := strings.ReplaceAll(p, "\\", "/")
	for strings.HasPrefix(s, "../") {
		s = strings.TrimPrefix(s, "../")
	}
	s = strings.TrimPrefix(s, "./")
	return strings.TrimPrefix(s, "assets/")
}
