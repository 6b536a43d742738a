package scene

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/maps"
)

type EffectKind int

const (
	PlaySound EffectKind = iota
	PauseBackground
	PlayBackground
	StopEffects
	PressButton
	OpenWall
	DespawnCollectible
	SnapCameraToCollectible
	SwapMap
	SetWon
)

var effectNames = [...]string{
	PlaySound:               "play_sound",
	PauseBackground:         "pause_background",
	PlayBackground:          "play_background",
	StopEffects:             "stop_effects",
	PressButton:             "press_button",
	OpenWall:                "open_wall",
	DespawnCollectible:      "despawn_collectible",
	SnapCameraToCollectible: "snap_camera_to_collectible",
	SwapMap:                 "swap_map",
	SetWon:                  "set_won",
}

func (k EffectKind) String() string {
	if k >= 0 && int(k) < len(effectNames) {
		return effectNames[k]
	}
	return "unknown"
}

// Effect is a one-shot side effect of a scene. Only the fields relevant to
// Kind are set.
type Effect struct {
	Kind   EffectKind
	Sound  string
	Tracks []string
	Target ecs.Entity
	Map    maps.ID
}

// Audio reports whether the effect only touches audio. Skipping a scene drops
// pending audio effects but still applies everything else.
func (e Effect) Audio() bool {
	switch e.Kind {
	case PlaySound, PauseBackground, PlayBackground, StopEffects:
		return true
	}
	return false
}

func (e Effect) String() string {
	switch e.Kind {
	case PlaySound:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Sound)
	case PlayBackground:
		return fmt.Sprintf("%s(%s)", e.Kind, strings.Join(e.Tracks, ","))
	case PressButton, OpenWall:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Target)
	case SwapMap:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Map)
	}
	return e.Kind.String()
}

// Prop is the transform of the collectible.
type Prop struct {
	Position cp.Vector
	Rotation float64
	Scale    float64
}

// Pose holds the transform writes of one frame. Nil vectors and zero scales
// leave the target untouched.
type Pose struct {
	Camera      *cp.Vector
	CameraScale float64
	Actor       *cp.Vector
	ActorScale  float64
	Collectible *Prop
}

func at(v cp.Vector) *cp.Vector { return &v }
