package engine

import (
	"github.com/badu/evremap/ievent"
	"github.com/badu/evremap/keycode"
)

// KeyState shadows the kernel's own idea of which keys are currently held,
// updated from every event the engine actually writes (synthetic or
// pass-through). Tap/hold rules consult it to ask "is the hold key already
// down from some other source" before deciding whether a fresh tap should
// resolve immediately.
type KeyState struct {
	matrix map[keycode.Code]ievent.Value
}

// NewKeyState returns an empty shadow, everything implicitly up.
func NewKeyState() *KeyState {
	return &KeyState{matrix: make(map[keycode.Code]ievent.Value)}
}

// Observe records that code was last written with value.
func (k *KeyState) Observe(code keycode.Code, value ievent.Value) {
	k.matrix[code] = value
}

// IsDown reports whether code, or its mirrored sibling modifier, is
// currently held.
func (k *KeyState) IsDown(code keycode.Code) bool {
	if k.down(code) {
		return true
	}
	if sib, ok := keycode.Sibling(code); ok {
		return k.down(sib)
	}
	return false
}

func (k *KeyState) down(code keycode.Code) bool {
	v, ok := k.matrix[code]
	return ok && v != ievent.Up
}
