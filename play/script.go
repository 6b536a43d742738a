package play

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/thechase/scene"
)

var ErrAssert = errors.New("play: assertion failed")

// RunScript runs a tengo playthrough script against the runtime. The script
// drives the game through host functions; a failed assert ends the run with
// ErrAssert.
func RunScript(ctx context.Context, r *Runtime, name string, src []byte) error {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "math", "text"))
	for _, fn := range hostFunctions(r) {
		if err := script.Add(fn.Name, fn); err != nil {
			return fmt.Errorf("play: %s: add %s: %w", name, fn.Name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("play: %s: compile: %w", name, err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return fmt.Errorf("play: %s: %w", name, err)
	}
	return nil
}

func hostFunctions(r *Runtime) []*tengo.UserFunction {
	return []*tengo.UserFunction{
		{Name: "wait_idle", Value: func(args ...tengo.Object) (tengo.Object, error) {
			limit, err := secondsArg(args, 0, 10*time.Second)
			if err != nil {
				return nil, err
			}
			return tengo.UndefinedValue, r.WaitIdle(limit)
		}},
		{Name: "advance", Value: func(args ...tengo.Object) (tengo.Object, error) {
			d, err := secondsArg(args, 0, FrameDT)
			if err != nil {
				return nil, err
			}
			r.Advance(d)
			return tengo.UndefinedValue, nil
		}},
		{Name: "skip", Value: func(args ...tengo.Object) (tengo.Object, error) {
			r.Skip()
			return tengo.UndefinedValue, nil
		}},
		{Name: "current_map", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.String{Value: string(r.Session().Map)}, nil
		}},
		{Name: "scene", Value: func(args ...tengo.Object) (tengo.Object, error) {
			kind, ok := r.Session().ActiveKind()
			if !ok {
				return &tengo.String{Value: ""}, nil
			}
			return &tengo.String{Value: kind.String()}, nil
		}},
		{Name: "won", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return boolObject(r.Session().Won), nil
		}},
		{Name: "wall_open", Value: func(args ...tengo.Object) (tengo.Object, error) {
			i, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			return boolObject(r.WallOpen(i)), nil
		}},
		{Name: "player_cell", Value: func(args ...tengo.Object) (tengo.Object, error) {
			col, row := r.PlayerCell()
			return &tengo.Array{Value: []tengo.Object{&tengo.Int{Value: int64(col)}, &tengo.Int{Value: int64(row)}}}, nil
		}},
		{Name: "walk_to_button", Value: func(args ...tengo.Object) (tengo.Object, error) {
			i, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			limit, err := secondsArg(args, 1, 20*time.Second)
			if err != nil {
				return nil, err
			}
			if err := r.WaitMap(limit); err != nil {
				return nil, err
			}
			pos, ok := r.ButtonPosition(i)
			if !ok {
				return nil, fmt.Errorf("play: no button %d on %s", i, r.Session().Map)
			}
			sc, err := r.WalkTo(pos, limit, scene.KindActivateButton)
			if err != nil {
				return nil, err
			}
			if sc == nil {
				return nil, fmt.Errorf("play: button %d on %s did not start its scene", i, r.Session().Map)
			}
			return tengo.UndefinedValue, nil
		}},
		{Name: "walk_to_goal", Value: func(args ...tengo.Object) (tengo.Object, error) {
			limit, err := secondsArg(args, 0, 20*time.Second)
			if err != nil {
				return nil, err
			}
			if err := r.WaitMap(limit); err != nil {
				return nil, err
			}
			sc, err := r.WalkTo(r.Map().GoalPosition(), limit, scene.KindMapTransition, scene.KindWon)
			if err != nil {
				return nil, err
			}
			if sc == nil {
				return nil, fmt.Errorf("play: goal on %s did not start a scene", r.Session().Map)
			}
			return tengo.UndefinedValue, nil
		}},
		{Name: "assert", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) == 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			if !args[0].IsFalsy() {
				return tengo.TrueValue, nil
			}
			msg := "assert"
			if len(args) > 1 {
				if s, ok := tengo.ToString(args[1]); ok {
					msg = s
				}
			}
			return nil, fmt.Errorf("%w: %s (map %s, t=%s)", ErrAssert, msg, r.Session().Map, r.Now())
		}},
	}
}

func intArg(args []tengo.Object, i int) (int, error) {
	if len(args) <= i {
		return 0, tengo.ErrWrongNumArguments
	}
	v, ok := tengo.ToInt(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: "index", Expected: "int", Found: args[i].TypeName()}
	}
	return v, nil
}

// secondsArg reads an optional duration given in seconds.
func secondsArg(args []tengo.Object, i int, fallback time.Duration) (time.Duration, error) {
	if len(args) <= i {
		return fallback, nil
	}
	v, ok := tengo.ToFloat64(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: "seconds", Expected: "float", Found: args[i].TypeName()}
	}
	return time.Duration(v * float64(time.Second)), nil
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
