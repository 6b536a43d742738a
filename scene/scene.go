// Package scene runs the scripted camera sequences that freeze play: the map
// intro pan, the button/wall reveal, the fall into the next map and the win.
package scene

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/maps"
)

type Kind int

const (
	KindIntro Kind = iota
	KindActivateButton
	KindMapTransition
	KindWon
)

func (k Kind) String() string {
	switch k {
	case KindIntro:
		return "intro"
	case KindActivateButton:
		return "activate_button"
	case KindMapTransition:
		return "map_transition"
	case KindWon:
		return "won"
	default:
		return "unknown"
	}
}

// Scene is one of Intro, ActivateButton, MapTransition or Won.
type Scene interface {
	Kind() Kind
	sealed()
}

// Intro pans from the actor to the goal and back while the collectible runs to
// the goal. When CollectibleFalls it spins away into the hole, otherwise it
// stays at the goal.
type Intro struct {
	CameraFrom       cp.Vector
	CameraTo         cp.Vector
	Collectible      cp.Vector
	Goal             cp.Vector
	CollectibleFalls bool
}

// ActivateButton presses Button, pans to Wall, opens it and pans back.
type ActivateButton struct {
	Button     ecs.Entity
	Wall       ecs.Entity
	CameraFrom cp.Vector
	CameraTo   cp.Vector
}

// MapTransition shrinks the actor into the goal hole and swaps to Target.
type MapTransition struct {
	CameraFrom cp.Vector
	CameraTo   cp.Vector
	Target     maps.ID
}

// Won zooms in on the collectible and ends the game.
type Won struct{}

func (Intro) Kind() Kind          { return KindIntro }
func (ActivateButton) Kind() Kind { return KindActivateButton }
func (MapTransition) Kind() Kind  { return KindMapTransition }
func (Won) Kind() Kind            { return KindWon }

func (Intro) sealed()          {}
func (ActivateButton) sealed() {}
func (MapTransition) sealed()  {}
func (Won) sealed()            {}
