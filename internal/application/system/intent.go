package system

// Intent is one frame of player input packed into a bit set.
// It is what recordings store and what replays feed back.
type Intent uint16

const (
	IntentLeft Intent = 1 << iota
	IntentRight
	IntentDown
	IntentJump
	IntentJumpPressed
	IntentJumpReleased
	IntentSpray
	IntentKick
	IntentToggleAcid
	IntentPause
)

// Has reports whether every bit of o is set
func (i Intent) Has(o Intent) bool {
	return i&o == o
}

// Intent packs the input state
func (s InputState) Intent() Intent {
	var i Intent
	set := func(b bool, bit Intent) {
		if b {
			i |= bit
		}
	}
	set(s.Left, IntentLeft)
	set(s.Right, IntentRight)
	set(s.Down, IntentDown)
	set(s.Jump, IntentJump)
	set(s.JumpPressed, IntentJumpPressed)
	set(s.JumpReleased, IntentJumpReleased)
	set(s.Spray, IntentSpray)
	set(s.Kick, IntentKick)
	set(s.ToggleAcid, IntentToggleAcid)
	set(s.Pause, IntentPause)
	return i
}

// State unpacks the intent
func (i Intent) State() InputState {
	return InputState{
		Left:         i.Has(IntentLeft),
		Right:        i.Has(IntentRight),
		Down:         i.Has(IntentDown),
		Jump:         i.Has(IntentJump),
		JumpPressed:  i.Has(IntentJumpPressed),
		JumpReleased: i.Has(IntentJumpReleased),
		Spray:        i.Has(IntentSpray),
		Kick:         i.Has(IntentKick),
		ToggleAcid:   i.Has(IntentToggleAcid),
		Pause:        i.Has(IntentPause),
	}
}
