// Package movement advances the actor one frame on the tile grid.
package movement

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/tilegrid"
)

const (
	DefaultSpeed      = 250.0
	DefaultGoalRadius = 20.0
)

// CellSet is the set of cells the actor may not enter.
type CellSet map[tilegrid.Cell]struct{}

func NewCellSet(cells ...tilegrid.Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Add(c tilegrid.Cell) { s[c] = struct{}{} }

func (s CellSet) Has(c tilegrid.Cell) bool {
	_, ok := s[c]
	return ok
}

type Input struct {
	Position cp.Vector
	// Intent is the requested direction, usually of length 0 or 1.
	Intent   cp.Vector
	Speed    float64
	DT       float64
	TileSize float64
	Columns  int
	Rows     int
	Blocked  CellSet
	Goal     cp.Vector
	// GoalRadius is exclusive: the goal is reached strictly inside it.
	GoalRadius float64
	Frozen     bool
}

type Result struct {
	Position cp.Vector
	Moved    bool
	// Rejected is set when a non-zero displacement was refused.
	Rejected    bool
	Cell        tilegrid.Cell
	ReachedGoal bool
}

// CellAt returns the cell whose tile contains p. Tiles are centred on their
// position, hence the half-tile offset.
func CellAt(p cp.Vector, tileSize float64) tilegrid.Cell {
	return tilegrid.Cell{
		Column: int(math.Floor((p.X + tileSize/2) / tileSize)),
		Row:    int(math.Floor((p.Y + tileSize/2) / tileSize)),
	}
}

// Step moves the actor by Intent*Speed*DT. The target cell is computed from
// the combined displacement; if it is off the map or blocked the whole move is
// dropped, there is no sliding along walls.
func Step(in Input) Result {
	res := Result{Position: in.Position, Cell: CellAt(in.Position, in.TileSize)}
	if in.Frozen || in.TileSize <= 0 || (in.Intent.X == 0 && in.Intent.Y == 0) {
		return res
	}

	delta := in.Intent.Mult(in.Speed * in.DT)
	if delta.X == 0 && delta.Y == 0 {
		return res
	}
	next := in.Position.Add(delta)
	cell := CellAt(next, in.TileSize)
	if cell.Column < 0 || cell.Row < 0 || cell.Column >= in.Columns || cell.Row >= in.Rows || in.Blocked.Has(cell) {
		res.Rejected = true
		return res
	}

	res.Position = next
	res.Moved = true
	res.Cell = cell
	res.ReachedGoal = next.Distance(in.Goal) < in.GoalRadius
	return res
}
