package prefabs

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestEmbeddedGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.TileSize != 64 || spec.Player.Speed != 250 || spec.Player.GoalRadius != 20 {
		t.Fatalf("unexpected tuning: %+v", spec.Player)
	}
	intro := spec.Scenes.Intro
	if intro.Hold != 500*time.Millisecond || intro.Back != 3500*time.Millisecond {
		t.Fatalf("intro timings = %+v", intro)
	}
	if spec.Scenes.MapTransition.Zoom != 2*time.Second {
		t.Fatalf("zoom = %v", spec.Scenes.MapTransition.Zoom)
	}
	for _, key := range []string{"button_click", "wall_moving", "fall", "won"} {
		if spec.Audio.Clips[key] == "" {
			t.Fatalf("missing clip %q", key)
		}
	}
}

func TestEmbeddedCatalogSpec(t *testing.T) {
	spec, err := LoadCatalogSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.First != "ground" || len(spec.Maps) != 3 {
		t.Fatalf("catalog = %+v", spec)
	}
	if got := spec.Maps[0].Elements; len(got) != 1 || got[0].Wall != (SlotSpec{Column: 8, Row: 10}) {
		t.Fatalf("ground elements = %+v", got)
	}
}

func TestDecodeSpecRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeSpec[GameSpec]("game.yaml", []byte("tile_size: 64\nplayr:\n  speed: 1\n"))
	if err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := map[string]string{
		"full_run":                     "scripts/full_run.tengo",
		"scripts/full_run.tengo":       "scripts/full_run.tengo",
		"prefabs/scripts/button.tengo": "scripts/button.tengo",
	}
	for in, want := range tests {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if len(ScriptNames()) == 0 {
		t.Fatalf("expected embedded scripts")
	}
}

func TestRelevantEvents(t *testing.T) {
	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "prefabs/game.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "prefabs/scripts/a.tengo", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "prefabs/game.yaml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tc := range tests {
		if got := relevant(tc.event); got != tc.want {
			t.Fatalf("relevant(%v) = %v, want %v", tc.event, got, tc.want)
		}
	}
}
