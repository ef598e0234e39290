package engine

import "github.com/badu/evremap/keycode"

// actKind discriminates ActState's three cases. The original C packed
// this into a single act_key field using RESERVED and -1 as sentinels for
// "idle" and "armed"; ActState makes the three states explicit instead of
// asking every reader to remember what the sentinels mean.
type actKind uint8

const (
	actIdle actKind = iota
	actArmed
	actActing
)

// ActState is a tap/hold rule's resolution state for the base key it is
// currently tracking: idle (no press in flight), armed (pressed, waiting
// to see whether it resolves to a tap or a hold), or acting as a concrete
// key (the resolution has happened and that key is the one currently
// "down" as far as the rule is concerned).
type ActState struct {
	kind actKind
	code keycode.Code
}

// Idle is the zero value: no base-key press is being tracked.
func Idle() ActState { return ActState{kind: actIdle} }

// Armed means a base-key press is in flight, not yet resolved.
func Armed() ActState { return ActState{kind: actArmed} }

// Acting means the rule has resolved to acting as code (a tap, a hold, or
// a configured repeat key).
func Acting(code keycode.Code) ActState { return ActState{kind: actActing, code: code} }

func (s ActState) IsIdle() bool  { return s.kind == actIdle }
func (s ActState) IsArmed() bool { return s.kind == actArmed }

// ActingKey returns the key the rule is currently acting as, and true,
// or (Reserved, false) if the rule is not in the Acting state.
func (s ActState) ActingKey() (keycode.Code, bool) {
	return s.code, s.kind == actActing
}
