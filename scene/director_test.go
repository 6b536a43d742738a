package scene

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs"
	"github.com/milk9111/thechase/prefabs"
)

const frame = time.Second / 60

func kinds(effects []Effect) []EffectKind {
	out := make([]EffectKind, 0, len(effects))
	for _, e := range effects {
		out = append(out, e.Kind)
	}
	return out
}

func equalKinds(a, b []EffectKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// run advances frame by frame until the scene finishes, collecting effects.
func run(t *testing.T, d *Director, s *Session, until time.Duration) ([]Effect, Update) {
	t.Helper()
	var (
		all  []Effect
		last Update
	)
	for now := time.Duration(0); now <= until; now += frame {
		up := d.Advance(s, now)
		all = append(all, up.Effects...)
		if up.Finished {
			return all, up
		}
		last = up
	}
	return all, last
}

func TestPanBoundariesAreContinuous(t *testing.T) {
	d := NewDirector(DefaultConfig())
	from, to := cp.Vector{X: 368, Y: 948}, cp.Vector{X: 576, Y: 576}
	s := NewSession("ground")
	s.Begin(Intro{CameraFrom: from, CameraTo: to}, 0)

	tm := DefaultConfig().Intro
	if up := d.Advance(s, 100*time.Millisecond); up.Pose.Camera != nil {
		t.Fatalf("hold phase should not move the camera")
	}

	tests := []struct {
		name string
		at   time.Duration
		want cp.Vector
	}{
		{"pan start", tm.Hold, from},
		{"pan middle", (tm.Hold + tm.Pan) / 2, from.Lerp(to, 0.5)},
		{"park start", tm.Pan, to},
		{"park end", tm.Park - time.Millisecond, to},
		{"back start", tm.Park, to},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			up := d.Advance(s, tc.at)
			if up.Pose.Camera == nil {
				t.Fatalf("no camera write at %v", tc.at)
			}
			if got := *up.Pose.Camera; got.Distance(tc.want) > 1e-9 {
				t.Fatalf("camera at %v = %v, want %v", tc.at, got, tc.want)
			}
		})
	}

	up := d.Advance(s, tm.Back)
	if !up.Finished || *up.Pose.Camera != from {
		t.Fatalf("completion should snap camera back to %v, got %+v", from, up)
	}
	if s.Frozen() {
		t.Fatalf("session still frozen after completion")
	}
}

func TestActivateButtonEffectsFireOnce(t *testing.T) {
	button, wall := ecs.Entity(3), ecs.Entity(4)
	sc := ActivateButton{Button: button, Wall: wall, CameraFrom: cp.Vector{X: 1}, CameraTo: cp.Vector{X: 2}}

	t.Run("frame by frame", func(t *testing.T) {
		d := NewDirector(DefaultConfig())
		s := NewSession("ground")
		s.Begin(sc, 0)
		effects, last := run(t, d, s, 5*time.Second)
		if !last.Finished {
			t.Fatalf("scene did not finish")
		}
		want := []EffectKind{PressButton, PlaySound, PlaySound, OpenWall}
		if got := kinds(effects); !equalKinds(got, want) {
			t.Fatalf("effects = %v, want %v", got, want)
		}
		if effects[0].Target != button || effects[3].Target != wall {
			t.Fatalf("effects target wrong entities: %v", effects)
		}
		if effects[1].Sound != "button_click" || effects[2].Sound != "wall_moving" {
			t.Fatalf("sounds = %q, %q", effects[1].Sound, effects[2].Sound)
		}
	})

	t.Run("one long frame", func(t *testing.T) {
		d := NewDirector(DefaultConfig())
		s := NewSession("ground")
		s.Begin(sc, 0)
		up := d.Advance(s, 1200*time.Millisecond)
		want := []EffectKind{PressButton, PlaySound, PlaySound, OpenWall}
		if got := kinds(up.Effects); !equalKinds(got, want) {
			t.Fatalf("effects = %v, want %v", got, want)
		}
		if s.Step != 3 {
			t.Fatalf("step = %d, want 3", s.Step)
		}
		if up := d.Advance(s, 1300*time.Millisecond); len(up.Effects) != 0 {
			t.Fatalf("effects fired twice: %v", up.Effects)
		}
	})
}

func TestSkipActivateButton(t *testing.T) {
	button, wall := ecs.Entity(3), ecs.Entity(4)
	sc := ActivateButton{Button: button, Wall: wall, CameraFrom: cp.Vector{X: 10, Y: 20}, CameraTo: cp.Vector{X: 30}}

	tests := []struct {
		name    string
		advance []time.Duration
		want    []EffectKind
	}{
		{name: "before first tick", want: []EffectKind{PressButton, OpenWall, StopEffects}},
		{name: "during hold", advance: []time.Duration{0, 100 * time.Millisecond}, want: []EffectKind{OpenWall, StopEffects}},
		{name: "during pan back", advance: []time.Duration{0, 1600 * time.Millisecond}, want: []EffectKind{StopEffects}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDirector(DefaultConfig())
			s := NewSession("ground")
			s.Begin(sc, 0)
			for _, now := range tc.advance {
				d.Advance(s, now)
			}
			up := d.Skip(s)
			if got := kinds(up.Effects); !equalKinds(got, tc.want) {
				t.Fatalf("skip effects = %v, want %v", got, tc.want)
			}
			if !up.Skipped || !up.Finished || s.Frozen() {
				t.Fatalf("skip did not end the scene: %+v frozen=%v", up, s.Frozen())
			}
			if up.Pose.Camera == nil || *up.Pose.Camera != sc.CameraFrom {
				t.Fatalf("skip should snap camera to origin")
			}
			if again := d.Advance(s, 10*time.Second); again.Scene != nil || len(again.Effects) != 0 {
				t.Fatalf("skipped scene produced more work: %+v", again)
			}
			if again := d.Skip(s); again.Scene != nil {
				t.Fatalf("second skip should be a no-op")
			}
		})
	}
}

func TestIntroCollectibleHandledExactlyOnce(t *testing.T) {
	goal := cp.Vector{X: 576, Y: 576}
	for _, falls := range []bool{true, false} {
		name := "stays"
		if falls {
			name = "falls"
		}
		t.Run(name, func(t *testing.T) {
			d := NewDirector(DefaultConfig())
			s := NewSession("ground")
			s.Begin(Intro{Collectible: cp.Vector{X: 768, Y: 576}, Goal: goal, CollectibleFalls: falls}, 0)

			var (
				despawns  int
				shrunk    int
				lastProp  *Prop
				finalProp *Prop
			)
			for now := time.Duration(0); ; now += frame {
				up := d.Advance(s, now)
				for _, e := range up.Effects {
					if e.Kind == DespawnCollectible {
						despawns++
					}
				}
				if p := up.Pose.Collectible; p != nil {
					if p.Scale < 1 && (lastProp == nil || lastProp.Scale == 1) {
						shrunk++
					}
					lastProp = p
				}
				if up.Finished {
					finalProp = up.Pose.Collectible
					break
				}
			}

			if falls {
				if despawns != 1 || shrunk != 1 {
					t.Fatalf("despawns=%d shrink runs=%d, want 1 and 1", despawns, shrunk)
				}
				if finalProp != nil {
					t.Fatalf("fallen collectible should not be placed again")
				}
				return
			}
			if despawns != 0 || shrunk != 0 {
				t.Fatalf("despawns=%d shrink runs=%d, want none", despawns, shrunk)
			}
			if finalProp == nil || finalProp.Position != goal || finalProp.Scale != 1 {
				t.Fatalf("collectible should rest on the goal, got %+v", finalProp)
			}
		})
	}
}

func TestSkipIntroDespawnsFallingCollectible(t *testing.T) {
	d := NewDirector(DefaultConfig())
	s := NewSession("ground")
	s.Begin(Intro{CollectibleFalls: true}, 0)
	d.Advance(s, 0)
	up := d.Skip(s)
	want := []EffectKind{DespawnCollectible}
	if got := kinds(up.Effects); !equalKinds(got, want) {
		t.Fatalf("skip effects = %v, want %v", got, want)
	}
}

func TestSkipIntroKeepsEffectsPlaying(t *testing.T) {
	tests := []struct {
		name  string
		scene Scene
		stops bool
	}{
		{name: "intro", scene: Intro{}},
		{name: "activate button", scene: ActivateButton{}, stops: true},
		{name: "map transition", scene: MapTransition{Target: "dirt"}, stops: true},
		{name: "won", scene: Won{}, stops: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirector(DefaultConfig())
			s := NewSession("ground")
			s.Begin(tt.scene, 0)
			d.Advance(s, 0)
			up := d.Skip(s)
			stops := 0
			for _, e := range up.Effects {
				if e.Kind == StopEffects {
					stops++
				}
			}
			want := 0
			if tt.stops {
				want = 1
			}
			if stops != want {
				t.Fatalf("stop effects = %d, want %d (%v)", stops, want, kinds(up.Effects))
			}
		})
	}
}

func TestMapTransitionSwapsMapAtEnd(t *testing.T) {
	d := NewDirector(DefaultConfig())
	s := NewSession("ground")
	sc := MapTransition{CameraFrom: cp.Vector{X: 500, Y: 500}, CameraTo: cp.Vector{X: 576, Y: 576}, Target: "dirt"}
	s.Begin(sc, 0)

	first := d.Advance(s, 0)
	if got := kinds(first.Effects); !equalKinds(got, []EffectKind{PlaySound, PauseBackground}) {
		t.Fatalf("start effects = %v", got)
	}
	mid := d.Advance(s, time.Second)
	if mid.Pose.Actor == nil || *mid.Pose.Actor != *mid.Pose.Camera {
		t.Fatalf("camera should follow the actor: %+v", mid.Pose)
	}
	if mid.Pose.CameraScale >= 1 || mid.Pose.ActorScale >= 1 || mid.Pose.CameraScale <= 0.02 {
		t.Fatalf("scales mid zoom = %v, %v", mid.Pose.CameraScale, mid.Pose.ActorScale)
	}

	end := d.Advance(s, 2500*time.Millisecond)
	if !end.Finished || len(end.Effects) != 1 || end.Effects[0].Kind != SwapMap || end.Effects[0].Map != "dirt" {
		t.Fatalf("end = %+v", end)
	}
	if *end.Pose.Actor != sc.CameraTo || math.Abs(end.Pose.ActorScale-0.05) > 1e-9 {
		t.Fatalf("final pose = %+v", end.Pose)
	}
}

func TestSkipWon(t *testing.T) {
	d := NewDirector(DefaultConfig())
	s := NewSession("stone")
	s.Begin(Won{}, 0)
	up := d.Skip(s)
	want := []EffectKind{SnapCameraToCollectible, StopEffects, SetWon, PlayBackground}
	if got := kinds(up.Effects); !equalKinds(got, want) {
		t.Fatalf("skip effects = %v, want %v", got, want)
	}
	if up.Pose.CameraScale != 0.3 {
		t.Fatalf("camera scale = %v", up.Pose.CameraScale)
	}
}

func TestConfigFromSpec(t *testing.T) {
	spec := &prefabs.GameSpec{}
	spec.Scenes.Intro = prefabs.PanSpec{Hold: time.Second, Pan: 500 * time.Millisecond, Park: 3 * time.Second, Back: 4 * time.Second}
	spec.Scenes.ActivateButton = prefabs.PanSpec{Hold: 100 * time.Millisecond, Pan: 200 * time.Millisecond, Park: 300 * time.Millisecond, Back: 400 * time.Millisecond}
	spec.Scenes.Won.Zoom = 3 * time.Second

	cfg := ConfigFromSpec(spec)
	if cfg.Intro != DefaultConfig().Intro {
		t.Fatalf("out of order intro timings should fall back, got %+v", cfg.Intro)
	}
	if cfg.ActivateButton.Back != 400*time.Millisecond {
		t.Fatalf("button timings not applied: %+v", cfg.ActivateButton)
	}
	if cfg.Won.Zoom != 3*time.Second || cfg.Won.CameraScaleFloor != 0.3 {
		t.Fatalf("won timings = %+v", cfg.Won)
	}
}
