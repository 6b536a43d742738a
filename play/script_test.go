package play

import (
	"context"
	"errors"
	"testing"

	"github.com/milk9111/thechase/prefabs"
)

func TestEmbeddedScripts(t *testing.T) {
	names := prefabs.ScriptNames()
	if len(names) == 0 {
		t.Fatalf("no embedded scripts")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			src, err := prefabs.LoadScript(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			r, _ := newRuntime(t, "")
			if err := RunScript(context.Background(), r, name, src); err != nil {
				t.Fatalf("run: %v", err)
			}
		})
	}
}

func TestScriptAssertFails(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{name: "false assert", src: `assert(current_map() == "stone", "wrong map")`, wantErr: ErrAssert},
		{name: "unknown button", src: `walk_to_button(3, 1)`},
		{name: "compile error", src: `walk_to_goal(`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newRuntime(t, "")
			err := RunScript(context.Background(), r, tc.name, []byte(tc.src))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v want %v", err, tc.wantErr)
			}
		})
	}
}
