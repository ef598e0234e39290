package rules

import (
	"github.com/badu/evremap/engine"
	"github.com/badu/evremap/keycode"
)

// Map is the baked-in map-rule table, scanned in order with first match
// winning. CapsLock is useless in its factory position on most layouts,
// so it becomes a second Escape -- the canonical "why anyone uses this
// at all" example.
var Map = []engine.MapRule{
	{From: keycode.CapsLock, To: keycode.Esc},
}

// TapHold is the baked-in tap/hold rule table. A, the common home-row
// left-hand anchor, doubles as LeftCtrl when held with another key, and
// falls back to sending plain A repeats if it's held alone long enough
// for the kernel's own auto-repeat to kick in twice.
var TapHold = []*engine.TapHoldRule{
	{
		BaseKey:     keycode.A,
		TapKey:      keycode.A,
		HoldKey:     keycode.LeftCtrl,
		RepeatKey:   keycode.A,
		RepeatDelay: 2,
		TapTyping:   true,
	},
}

// MultiKey is the baked-in multi-key toggle table. Pressing both shift
// keys together toggles CapsLock, a common ergonomic substitute for the
// physical CapsLock key (already remapped to Escape above).
var MultiKey = []*engine.MultiRule{
	newDoubleShiftCapsLock(),
}

func newDoubleShiftCapsLock() *engine.MultiRule {
	down, up := HoldWhileDown(keycode.CapsLock)
	return engine.NewMultiRule(
		[]keycode.Code{keycode.LeftShift, keycode.RightShift},
		down, up,
		Exactly(0), Exactly(0), Exactly(0),
	)
}
