package scene

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/common"
)

type phaseKind int

const (
	phaseHold phaseKind = iota
	phasePanTo
	phasePark
	phasePanBack
	phaseZoom
)

type phase struct {
	kind  phaseKind
	end   time.Duration
	enter []Effect
}

// schedule is the timeline of one scene. Phases run back to back from zero;
// pose maps a phase and its progress in [0,1] to transform writes.
type schedule struct {
	phases []phase
	finish []Effect
	pose   func(i int, progress float64) Pose
	final  Pose
	// keepAudio leaves playing effects alone when the scene is skipped.
	keepAudio bool
}

func (s schedule) start(i int) time.Duration {
	if i == 0 {
		return 0
	}
	return s.phases[i-1].end
}

func (s schedule) total() time.Duration {
	if len(s.phases) == 0 {
		return 0
	}
	return s.phases[len(s.phases)-1].end
}

func (c Config) schedule(sc Scene) schedule {
	switch sc := sc.(type) {
	case Intro:
		return c.introSchedule(sc)
	case ActivateButton:
		return c.buttonSchedule(sc)
	case MapTransition:
		return c.transitionSchedule(sc)
	case Won:
		return c.wonSchedule()
	}
	return schedule{}
}

func panPhases(t PanTimings) []phase {
	return []phase{
		{kind: phaseHold, end: t.Hold},
		{kind: phasePanTo, end: t.Pan},
		{kind: phasePark, end: t.Park},
		{kind: phasePanBack, end: t.Back},
	}
}

func panPose(kind phaseKind, from, to cp.Vector, p float64) Pose {
	switch kind {
	case phasePanTo:
		return Pose{Camera: at(common.LerpVec(from, to, p))}
	case phasePark:
		return Pose{Camera: at(to)}
	case phasePanBack:
		return Pose{Camera: at(common.LerpVec(to, from, p))}
	}
	return Pose{}
}

func (c Config) introSchedule(sc Intro) schedule {
	phases := panPhases(c.Intro)
	if sc.CollectibleFalls {
		phases[3].enter = []Effect{{Kind: DespawnCollectible}}
	}
	final := Pose{Camera: at(sc.CameraFrom)}
	if !sc.CollectibleFalls {
		final.Collectible = &Prop{Position: sc.Goal, Scale: 1}
	}
	return schedule{
		phases:    phases,
		keepAudio: true,
		pose: func(i int, p float64) Pose {
			pose := panPose(phases[i].kind, sc.CameraFrom, sc.CameraTo, p)
			switch phases[i].kind {
			case phasePark:
				prop := collectibleRun(sc, p)
				pose.Collectible = &prop
			case phasePanBack:
				pose.Collectible = final.Collectible
			}
			return pose
		},
		final: final,
	}
}

// collectibleRun places the collectible during the park phase. A falling
// collectible covers the path in the first half and spins and shrinks in the
// second; otherwise it glides over the whole window.
func collectibleRun(sc Intro, p float64) Prop {
	if !sc.CollectibleFalls {
		return Prop{Position: common.LerpVec(sc.Collectible, sc.Goal, p), Scale: 1}
	}
	partial := common.Clamp(p*2, 0, 2)
	if partial < 1 {
		return Prop{Position: common.LerpVec(sc.Collectible, sc.Goal, partial), Scale: 1}
	}
	spin := partial - 1
	return Prop{
		Position: sc.Goal,
		Rotation: spin * 2 * math.Pi,
		Scale:    common.Lerp(1, 0.05, spin),
	}
}

func (c Config) buttonSchedule(sc ActivateButton) schedule {
	phases := panPhases(c.ActivateButton)
	phases[0].enter = []Effect{
		{Kind: PressButton, Target: sc.Button},
		{Kind: PlaySound, Sound: c.Sounds.ButtonClick},
	}
	phases[1].enter = []Effect{{Kind: PlaySound, Sound: c.Sounds.WallMoving}}
	phases[2].enter = []Effect{{Kind: OpenWall, Target: sc.Wall}}
	return schedule{
		phases: phases,
		pose: func(i int, p float64) Pose {
			return panPose(phases[i].kind, sc.CameraFrom, sc.CameraTo, p)
		},
		final: Pose{Camera: at(sc.CameraFrom)},
	}
}

func (c Config) transitionSchedule(sc MapTransition) schedule {
	t := c.MapTransition
	pose := func(_ int, p float64) Pose {
		actor := common.LerpVec(sc.CameraFrom, sc.CameraTo, p)
		return Pose{
			Camera:      at(actor),
			Actor:       at(actor),
			CameraScale: common.Lerp(1, t.CameraScaleFloor, common.Clamp(p, 0, 1)),
			ActorScale:  common.Lerp(1, t.ActorScaleFloor, common.Clamp(p, 0, 1)),
		}
	}
	return schedule{
		phases: []phase{{
			kind: phaseZoom,
			end:  t.Zoom,
			enter: []Effect{
				{Kind: PlaySound, Sound: c.Sounds.Fall},
				{Kind: PauseBackground},
			},
		}},
		finish: []Effect{{Kind: SwapMap, Map: sc.Target}},
		pose:   pose,
		final:  pose(0, 1),
	}
}

func (c Config) wonSchedule() schedule {
	t := c.Won
	return schedule{
		phases: []phase{{
			kind: phaseZoom,
			end:  t.Zoom,
			enter: []Effect{
				{Kind: SnapCameraToCollectible},
				{Kind: PlaySound, Sound: c.Sounds.Won},
				{Kind: PauseBackground},
			},
		}},
		finish: []Effect{
			{Kind: SetWon},
			{Kind: StopEffects},
			{Kind: PlayBackground, Tracks: c.WonBackground},
		},
		pose: func(_ int, p float64) Pose {
			return Pose{CameraScale: common.Lerp(1, t.CameraScaleFloor, common.Clamp(p, 0, 1))}
		},
		final: Pose{CameraScale: t.CameraScaleFloor},
	}
}
