package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/thechase/ecs/system"
)

const stickDeadzone = 0.2

// readIntent maps keyboard and the first gamepad to this frame's intent.
// Diagonals are normalized so they are not faster.
func readIntent() system.Intent {
	var in system.Intent

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	in.Skip = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	var move cp.Vector
	if left {
		move.X -= 1
	}
	if right {
		move.X += 1
	}
	if up {
		move.Y += 1
	}
	if down {
		move.Y -= 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(x, y) > stickDeadzone {
			// Stick Y grows downward, world Y upward.
			move = cp.Vector{X: x, Y: -y}
		}
		in.Skip = in.Skip || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	if l := move.Length(); l > 1 {
		move = move.Mult(1 / l)
	}
	in.Move = move
	in.HasMove = move.X != 0 || move.Y != 0
	return in
}
