package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Snapshot is the input state for one frame.
type Snapshot struct {
	// Horizontal is -1 for left, 0 for none, +1 for right.
	Horizontal float64
	// The Pressed fields are true only on the frame the key went down.
	JumpPressed    bool
	AbilityPressed bool
	ResetPressed   bool
	DebugPressed   bool
}

// Keyboard reads a Snapshot from ebiten's keyboard and the first gamepad.
type Keyboard struct {
	// Deadzone for the left stick.
	Deadzone float64
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Deadzone: 0.3}
}

// Poll must be called from ebiten's Update.
func (k *Keyboard) Poll() Snapshot {
	var s Snapshot

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		s.Horizontal -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		s.Horizontal += 1
	}

	s.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp)
	s.AbilityPressed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	s.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	s.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		s.Horizontal = Merge(s.Horizontal, leftX, k.Deadzone)

		s.JumpPressed = s.JumpPressed ||
			inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		s.AbilityPressed = s.AbilityPressed ||
			inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		s.ResetPressed = s.ResetPressed ||
			inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}
	return s
}

// Merge combines a digital horizontal value with an analog stick reading.
// The stick wins once it leaves the deadzone.
func Merge(digital, axis, deadzone float64) float64 {
	switch {
	case axis < -deadzone:
		return -1
	case axis > deadzone:
		return 1
	default:
		return digital
	}
}
