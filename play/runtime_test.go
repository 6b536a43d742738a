package play

import (
	"context"
	"testing"
	"time"

	"github.com/milk9111/thechase/levels"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/prefabs"
	"github.com/milk9111/thechase/scene"
)

type nopSink struct{ effects []string }

func (s *nopSink) PlayEffect(name string)  { s.effects = append(s.effects, name) }
func (s *nopSink) StopEffects()            {}
func (s *nopSink) PlayBackground([]string) {}
func (s *nopSink) PauseBackground()        {}
func (s *nopSink) ResumeBackground()       {}

func newRuntime(t *testing.T, first maps.ID) (*Runtime, *nopSink) {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("game spec: %v", err)
	}
	catalog, err := maps.Load(spec.TileSize)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var files []string
	for _, id := range catalog.IDs() {
		desc, _ := catalog.Get(id)
		files = append(files, desc.File)
	}
	batch := levels.Preload(context.Background(), levels.LevelsFS, files...)
	if err := batch.Wait(); err != nil {
		t.Fatalf("preload: %v", err)
	}
	sink := &nopSink{}
	r, err := New(Options{Spec: spec, Catalog: catalog, Maps: batch, Audio: sink, First: first})
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	return r, sink
}

func TestFullPlaythrough(t *testing.T) {
	r, sink := newRuntime(t, "")

	for range 3 {
		if err := r.WaitIdle(10 * time.Second); err != nil {
			t.Fatal(err)
		}
		desc := r.Map()
		for i := range desc.Elements {
			pos, ok := r.ButtonPosition(i)
			if !ok {
				t.Fatalf("%s: button %d missing", desc.ID, i)
			}
			sc, err := r.WalkTo(pos, 60*time.Second)
			if err != nil {
				t.Fatalf("%s: button %d: %v", desc.ID, i, err)
			}
			if sc == nil || sc.Kind() != scene.KindActivateButton {
				t.Fatalf("%s: button %d started %v", desc.ID, i, sc)
			}
			if err := r.WaitIdle(10 * time.Second); err != nil {
				t.Fatal(err)
			}
			if !r.WallOpen(i) {
				t.Fatalf("%s: wall %d still closed", desc.ID, i)
			}
		}

		sc, err := r.WalkTo(desc.GoalPosition(), 60*time.Second)
		if err != nil {
			t.Fatalf("%s: goal: %v", desc.ID, err)
		}
		want := scene.KindMapTransition
		if _, hasNext := desc.NextMap(); !hasNext {
			want = scene.KindWon
		}
		if sc == nil || sc.Kind() != want {
			t.Fatalf("%s: goal started %v want %s", desc.ID, sc, want)
		}
		if err := r.WaitIdle(10 * time.Second); err != nil {
			t.Fatal(err)
		}
		if want == scene.KindWon {
			break
		}
	}

	if !r.Session().Won {
		t.Fatalf("game not won, on %s", r.Session().Map)
	}
	if r.Session().Map != maps.Stone {
		t.Fatalf("won on %s", r.Session().Map)
	}
	if len(sink.effects) == 0 || sink.effects[len(sink.effects)-1] != "won" {
		t.Fatalf("effects = %v", sink.effects)
	}
}

func TestRetryReloadsFirstMap(t *testing.T) {
	tests := []struct {
		name  string
		first maps.ID
	}{
		{name: "from another map", first: maps.Stone},
		{name: "from the first map", first: maps.Ground},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newRuntime(t, tc.first)
			if err := r.WaitIdle(10 * time.Second); err != nil {
				t.Fatal(err)
			}
			r.Session().Won = true
			version := r.Session().MapVersion

			r.Retry()
			if err := r.WaitIdle(10 * time.Second); err != nil {
				t.Fatal(err)
			}
			if r.Session().Won {
				t.Fatalf("won survived retry")
			}
			if r.Session().Map != tc.first || r.Session().MapVersion <= version {
				t.Fatalf("session = %+v", r.Session())
			}
			if got, want := r.PlayerPosition(), r.Map().StartPosition(); got != want {
				t.Fatalf("player at %v want %v", got, want)
			}
		})
	}
}

func TestApplyConfigKeepsWindow(t *testing.T) {
	r, _ := newRuntime(t, "")
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatal(err)
	}
	spec.Window.Width = 10
	spec.Player.Speed = 500
	spec.Scenes.Intro.Back = 4 * time.Second

	r.ApplyConfig(spec)
	if r.Frame().Spec.Window.Width != 800 {
		t.Fatalf("window changed to %d", r.Frame().Spec.Window.Width)
	}
	if spec.Window.Width != 10 {
		t.Fatalf("caller's spec was rewritten, window width %d", spec.Window.Width)
	}
	if r.Frame().Spec.Player.Speed != 500 {
		t.Fatalf("speed = %v", r.Frame().Spec.Player.Speed)
	}
	if got := r.Frame().Director.Config().Intro.Back; got != 4*time.Second {
		t.Fatalf("intro back = %v", got)
	}
}
