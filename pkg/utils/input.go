// Package utils provides small shared helpers.
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState reports whether a pointer (touch or left mouse button) is
// currently held, and its position. Touch is checked first so mobile
// browsers win over a stale cursor position.
func PointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	return false, x, y
}

// PointerJustPressed reports whether a touch or left mouse click started
// this tick.
func PointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// IsJustTouchedOrClicked reports a fresh click or touch and its position.
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
