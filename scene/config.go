package scene

import (
	"time"

	"github.com/milk9111/thechase/prefabs"
)

// PanTimings are the phase boundaries of a pan-and-return scene, measured from
// the scene start: hold until Hold, pan out until Pan, park until Park, pan
// back until Back.
type PanTimings struct {
	Hold time.Duration
	Pan  time.Duration
	Park time.Duration
	Back time.Duration
}

func (p PanTimings) valid() bool {
	return 0 <= p.Hold && p.Hold <= p.Pan && p.Pan <= p.Park && p.Park <= p.Back && p.Back > 0
}

type ZoomTimings struct {
	Zoom             time.Duration
	CameraScaleFloor float64
	ActorScaleFloor  float64
}

type Sounds struct {
	ButtonClick string
	WallMoving  string
	Fall        string
	Won         string
}

type Config struct {
	Intro          PanTimings
	ActivateButton PanTimings
	MapTransition  ZoomTimings
	Won            ZoomTimings
	Sounds         Sounds
	WonBackground  []string
}

func DefaultConfig() Config {
	return Config{
		Intro: PanTimings{
			Hold: 500 * time.Millisecond,
			Pan:  1500 * time.Millisecond,
			Park: 2500 * time.Millisecond,
			Back: 3500 * time.Millisecond,
		},
		ActivateButton: PanTimings{
			Hold: 300 * time.Millisecond,
			Pan:  1000 * time.Millisecond,
			Park: 1500 * time.Millisecond,
			Back: 2200 * time.Millisecond,
		},
		MapTransition: ZoomTimings{Zoom: 2 * time.Second, CameraScaleFloor: 0.02, ActorScaleFloor: 0.05},
		Won:           ZoomTimings{Zoom: 2 * time.Second, CameraScaleFloor: 0.3},
		Sounds: Sounds{
			ButtonClick: "button_click",
			WallMoving:  "wall_moving",
			Fall:        "fall",
			Won:         "won",
		},
		WonBackground: []string{"ground_background"},
	}
}

// ConfigFromSpec reads scene tuning from game.yaml. Missing or inconsistent
// values fall back to the defaults.
func ConfigFromSpec(spec *prefabs.GameSpec) Config {
	cfg := DefaultConfig()
	if spec == nil {
		return cfg
	}
	pan := func(dst *PanTimings, src prefabs.PanSpec) {
		p := PanTimings(src)
		if p.valid() {
			*dst = p
		}
	}
	zoom := func(dst *ZoomTimings, src prefabs.ZoomSpec) {
		if src.Zoom > 0 {
			dst.Zoom = src.Zoom
		}
		if src.CameraScaleFloor > 0 {
			dst.CameraScaleFloor = src.CameraScaleFloor
		}
		if src.ActorScaleFloor > 0 {
			dst.ActorScaleFloor = src.ActorScaleFloor
		}
	}
	pan(&cfg.Intro, spec.Scenes.Intro)
	pan(&cfg.ActivateButton, spec.Scenes.ActivateButton)
	zoom(&cfg.MapTransition, spec.Scenes.MapTransition)
	zoom(&cfg.Won, spec.Scenes.Won)
	if len(spec.Audio.WonBackground) > 0 {
		cfg.WonBackground = append([]string(nil), spec.Audio.WonBackground...)
	}
	return cfg
}
