package system

import (
	"container/heap"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/ecs/component"
	"github.com/milk9111/thechase/ecs/entity"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/movement"
	"github.com/milk9111/thechase/tilegrid"
)

// arriveEpsilon is how close counts as standing on a waypoint.
const arriveEpsilon = 1e-6

// Autopilot steers the player to a world position along a 4-connected path
// around collision cells. Scripted playthroughs use it instead of a keyboard.
type Autopilot struct {
	Path []tilegrid.Cell
}

// Steer returns the intent for this frame. The intent is shorter than 1 on the
// frame that lands on a waypoint so the player stops exactly on it. ok is
// false when there is no path or the player is already there.
func (a *Autopilot) Steer(w *ecs.World, f *Frame, target cp.Vector) (Intent, bool) {
	desc, ok := f.Descriptor()
	if !ok {
		return Intent{}, false
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return Intent{}, false
	}
	pos, ok := entity.Position(w, player)
	if !ok || pos.Distance(target) <= arriveEpsilon {
		return Intent{}, false
	}

	start := movement.CellAt(pos, desc.TileSize)
	goal := movement.CellAt(target, desc.TileSize)
	blocked := movement.NewCellSet(entity.CollisionCells(w)...)
	a.Path = FindPath(start, goal, blocked, desc.Dimensions)
	if len(a.Path) == 0 {
		return Intent{}, false
	}

	waypoint := target
	if len(a.Path) > 1 {
		here, next := cellCentre(start, desc.TileSize), cellCentre(a.Path[1], desc.TileSize)
		waypoint = next
		// Line up on the axis of travel before heading for the next cell.
		switch {
		case next.X != here.X && math.Abs(pos.Y-here.Y) > arriveEpsilon:
			waypoint = cp.Vector{X: pos.X, Y: here.Y}
		case next.Y != here.Y && math.Abs(pos.X-here.X) > arriveEpsilon:
			waypoint = cp.Vector{X: here.X, Y: pos.Y}
		}
	}

	step := f.speed() * f.DT
	if step <= 0 {
		return Intent{}, false
	}
	delta := waypoint.Sub(pos)
	dist := delta.Length()
	if dist <= step {
		return Intent{Move: delta.Mult(1 / step), HasMove: true}, true
	}
	return Intent{Move: delta.Mult(1 / dist), HasMove: true}, true
}

func cellCentre(c tilegrid.Cell, tileSize float64) cp.Vector {
	return cp.Vector{X: float64(c.Column) * tileSize, Y: float64(c.Row) * tileSize}
}

// FindPath returns a shortest 4-connected path from start to goal, both
// included, or nil when goal cannot be reached.
func FindPath(start, goal tilegrid.Cell, blocked movement.CellSet, dims maps.Dimensions) []tilegrid.Cell {
	inBounds := func(c tilegrid.Cell) bool {
		return c.Column >= 0 && c.Row >= 0 && c.Column < dims.Columns && c.Row < dims.Rows
	}
	if !inBounds(start) || !inBounds(goal) || blocked.Has(goal) {
		return nil
	}

	index := func(c tilegrid.Cell) int { return c.Row*dims.Columns + c.Column }
	cameFrom := make([]int, dims.Columns*dims.Rows)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	gScore := make([]float64, dims.Columns*dims.Rows)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	startIdx, goalIdx := index(start), index(goal)
	gScore[startIdx] = 0

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{cell: start, f: heuristic(start, goal)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openItem).cell
		curIdx := index(cur)
		if curIdx == goalIdx {
			return reconstructPath(cameFrom, dims.Columns, startIdx, goalIdx)
		}
		for _, n := range neighbors(cur) {
			if !inBounds(n) || blocked.Has(n) {
				continue
			}
			idx := index(n)
			tentativeG := gScore[curIdx] + 1
			if tentativeG < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentativeG
				heap.Push(open, &openItem{cell: n, f: tentativeG + heuristic(n, goal)})
			}
		}
	}
	return nil
}

func reconstructPath(cameFrom []int, columns, startIdx, goalIdx int) []tilegrid.Cell {
	at := func(i int) tilegrid.Cell { return tilegrid.Cell{Column: i % columns, Row: i / columns} }
	if startIdx == goalIdx {
		return []tilegrid.Cell{at(startIdx)}
	}
	if cameFrom[goalIdx] == -1 {
		return nil
	}
	var path []tilegrid.Cell
	for cur := goalIdx; cur != -1; cur = cameFrom[cur] {
		path = append(path, at(cur))
		if cur == startIdx {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func neighbors(c tilegrid.Cell) [4]tilegrid.Cell {
	return [4]tilegrid.Cell{
		{Column: c.Column - 1, Row: c.Row},
		{Column: c.Column + 1, Row: c.Row},
		{Column: c.Column, Row: c.Row - 1},
		{Column: c.Column, Row: c.Row + 1},
	}
}

func heuristic(a, b tilegrid.Cell) float64 {
	return math.Abs(float64(a.Column-b.Column)) + math.Abs(float64(a.Row-b.Row))
}

type openItem struct {
	cell  tilegrid.Cell
	f     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
