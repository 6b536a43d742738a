// Package maps holds the static map catalog: which maps exist, where their
// anchors are, which button/wall pairs they carry and which map follows.
package maps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/prefabs"
	"github.com/milk9111/thechase/tilegrid"
)

var (
	ErrUnknownMap  = errors.New("maps: unknown map")
	ErrInvalidSlot = errors.New("maps: slot outside map")
)

type ID string

const (
	Ground ID = "ground"
	Dirt   ID = "dirt"
	Stone  ID = "stone"
)

// Slot is a tile coordinate as the map editor shows it: row 0 is the top row.
type Slot struct {
	Column int
	Row    int
}

type Dimensions struct {
	Columns int
	Rows    int
}

// ButtonWallPair opens Wall when the actor steps onto Button.
type ButtonWallPair struct {
	Button Slot
	Wall   Slot
}

// Descriptor is one catalog entry. It is never mutated after the catalog is
// built.
type Descriptor struct {
	ID          ID
	File        string
	Dimensions  Dimensions
	Start       Slot
	Goal        Slot
	Collectible Slot
	Elements    []ButtonWallPair
	Next        ID
	Background  []string
	TileSize    float64
}

// NextMap returns the map the goal leads to. The last map has none; reaching
// its goal wins the game.
func (d *Descriptor) NextMap() (ID, bool) {
	return d.Next, d.Next != ""
}

// PositionFromSlot converts an editor slot to the world position of its tile.
func (d *Descriptor) PositionFromSlot(s Slot) cp.Vector {
	return cp.Vector{
		X: float64(s.Column) * d.TileSize,
		Y: float64(d.Dimensions.Rows-s.Row-1) * d.TileSize,
	}
}

// Cell converts an editor slot to a grid cell (row 0 at the bottom).
func (d *Descriptor) Cell(s Slot) tilegrid.Cell {
	return tilegrid.Cell{Column: s.Column, Row: d.Dimensions.Rows - s.Row - 1}
}

func (d *Descriptor) StartPosition() cp.Vector       { return d.PositionFromSlot(d.Start) }
func (d *Descriptor) GoalPosition() cp.Vector        { return d.PositionFromSlot(d.Goal) }
func (d *Descriptor) CollectiblePosition() cp.Vector { return d.PositionFromSlot(d.Collectible) }

// Bounds is the world-space box covered by the map's tiles. Tiles are centred
// on their position, so the box starts half a tile before cell 0.
func (d *Descriptor) Bounds() cp.BB {
	half := d.TileSize / 2
	return cp.BB{
		L: -half,
		B: -half,
		R: float64(d.Dimensions.Columns)*d.TileSize - half,
		T: float64(d.Dimensions.Rows)*d.TileSize - half,
	}
}

func (d *Descriptor) contains(s Slot) bool {
	return s.Column >= 0 && s.Row >= 0 && s.Column < d.Dimensions.Columns && s.Row < d.Dimensions.Rows
}

// Catalog is the ordered set of maps.
type Catalog struct {
	first ID
	order []ID
	byID  map[ID]*Descriptor
}

// NewCatalog builds the catalog from its config file representation.
func NewCatalog(spec *prefabs.CatalogSpec, tileSize float64) (*Catalog, error) {
	if spec == nil {
		return nil, fmt.Errorf("maps: nil catalog spec")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("maps: tile size %v", tileSize)
	}
	c := &Catalog{first: ID(spec.First), byID: make(map[ID]*Descriptor, len(spec.Maps))}
	for _, m := range spec.Maps {
		id := ID(strings.TrimSpace(m.ID))
		if id == "" {
			return nil, fmt.Errorf("maps: entry without id")
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("maps: duplicate map %q", id)
		}
		d := &Descriptor{
			ID:          id,
			File:        m.File,
			Dimensions:  Dimensions{Columns: m.Columns, Rows: m.Rows},
			Start:       Slot(m.Start),
			Goal:        Slot(m.Goal),
			Collectible: Slot(m.Collectible),
			Next:        ID(m.Next),
			Background:  append([]string(nil), m.Background...),
			TileSize:    tileSize,
		}
		if d.File == "" {
			d.File = string(id) + ".json"
		}
		for _, el := range m.Elements {
			d.Elements = append(d.Elements, ButtonWallPair{Button: Slot(el.Button), Wall: Slot(el.Wall)})
		}
		c.byID[id] = d
		c.order = append(c.order, id)
	}
	if c.first == "" && len(c.order) > 0 {
		c.first = c.order[0]
	}
	return c, nil
}

// Load reads maps.yaml (disk override first) and builds the catalog.
func Load(tileSize float64) (*Catalog, error) {
	spec, err := prefabs.LoadCatalogSpec()
	if err != nil {
		return nil, err
	}
	return NewCatalog(spec, tileSize)
}

// First is the map a new game (and a retry) starts on.
func (c *Catalog) First() ID { return c.first }

// IDs lists the maps in catalog order.
func (c *Catalog) IDs() []ID {
	return append([]ID(nil), c.order...)
}

func (c *Catalog) Get(id ID) (*Descriptor, error) {
	if c != nil {
		if d, ok := c.byID[id]; ok {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMap, id)
}

// Validate checks every cross reference: the first map and every next map
// exist, all anchors and element slots lie on their map, and (when exists is
// given) every map file can be found.
func (c *Catalog) Validate(exists func(file string) bool) error {
	if len(c.order) == 0 {
		return fmt.Errorf("maps: empty catalog")
	}
	if _, err := c.Get(c.first); err != nil {
		return fmt.Errorf("maps: first map: %w", err)
	}
	var errs []error
	for _, id := range c.order {
		d := c.byID[id]
		if d.Dimensions.Columns <= 0 || d.Dimensions.Rows <= 0 {
			errs = append(errs, fmt.Errorf("maps: %s: dimensions %dx%d", id, d.Dimensions.Columns, d.Dimensions.Rows))
			continue
		}
		if next, ok := d.NextMap(); ok {
			if _, err := c.Get(next); err != nil {
				errs = append(errs, fmt.Errorf("maps: %s: next: %w", id, err))
			}
		}
		anchors := map[string]Slot{"start": d.Start, "goal": d.Goal, "collectible": d.Collectible}
		for i, el := range d.Elements {
			anchors[fmt.Sprintf("button %d", i)] = el.Button
			anchors[fmt.Sprintf("wall %d", i)] = el.Wall
		}
		bounds := d.Bounds()
		for name, s := range anchors {
			if !d.contains(s) || !bounds.ContainsVect(d.PositionFromSlot(s)) {
				errs = append(errs, fmt.Errorf("%w: %s %s (%d,%d)", ErrInvalidSlot, id, name, s.Column, s.Row))
			}
		}
		if exists != nil && !exists(d.File) {
			errs = append(errs, fmt.Errorf("maps: %s: file %q not found", id, d.File))
		}
	}
	return errors.Join(errs...)
}
