package rules

import "github.com/badu/evremap/keycode"

// HoldWhileDown presses target when the chord engages and releases it
// when the chord breaks -- the shape behind a lock-toggle like "tap both
// shifts together to toggle CapsLock".
func HoldWhileDown(target keycode.Code) (down, up [2]keycode.Code) {
	return [2]keycode.Code{target, keycode.Reserved}, [2]keycode.Code{keycode.Reserved, target}
}

// PressOnce fires target once when the chord engages and does nothing on
// disengage -- a momentary chord, e.g. a three-key combo that just sends
// one shortcut key.
func PressOnce(target keycode.Code) (down, up [2]keycode.Code) {
	return [2]keycode.Code{target, target}, [2]keycode.Code{keycode.Reserved, keycode.Reserved}
}

// Swap presses downTarget when the chord engages and releases upTarget
// when it breaks. With equal targets it is HoldWhileDown; with distinct
// targets this rule gives neither key its opposite edge.
func Swap(downTarget, upTarget keycode.Code) (down, up [2]keycode.Code) {
	return [2]keycode.Code{downTarget, keycode.Reserved}, [2]keycode.Code{keycode.Reserved, upTarget}
}

// Exactly builds a multi-key gate predicate that is satisfied only when
// the held-key count equals n.
func Exactly(n int) int { return n }

// NotEqual builds a multi-key gate predicate that is satisfied whenever
// the held-key count is anything other than n.
func NotEqual(n int) int { return -n }
