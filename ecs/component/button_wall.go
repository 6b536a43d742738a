package component

type ElementRole int

const (
	RoleButton ElementRole = iota
	RoleWall
)

func (r ElementRole) String() string {
	if r == RoleWall {
		return "wall"
	}
	return "button"
}

// ButtonWall is one half of a button/wall pair. Partner is the other half's
// entity handle (ecs.Entity is uint64); it is a weak reference and must be
// checked with ecs.IsAlive before use.
type ButtonWall struct {
	Role    ElementRole
	Pair    int
	Column  int
	Row     int
	Partner uint64
	// Activated is set on the button once pressed and on the wall once opened.
	Activated bool
}

var ButtonWallComponent = NewComponent[ButtonWall]("button_wall")
