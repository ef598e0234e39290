package engine

import (
	"math/bits"

	"github.com/badu/evremap/ievent"
	"github.com/badu/evremap/keycode"
)

// MultiRule watches a small chord of keys and fires a toggle when a gate
// condition over how many of them are currently down is satisfied,
// generalizing the original interception-k2k DOUBLE_RULES (which only
// ever watched exactly two keys and only ever gated on "all down"/"all
// up"). Keys is terminated by the first keycode.Reserved slot.
//
// DownPress/UpPress are each a (press, release) pair played on the
// corresponding transition; either half may be keycode.Reserved to skip
// it. A lock-toggle like "double-shift becomes CapsLock" presses CapsLock
// on the down transition and releases it on the up transition; a
// momentary chord presses its target on down and leaves UpPress empty.
type MultiRule struct {
	Keys [8]keycode.Code

	DownPress [2]keycode.Code
	UpPress   [2]keycode.Code

	// NBeforeDown/NBeforeUp re-arm the toggle once the held-key count
	// satisfies the relevant gate after a flip; NUp gates the up
	// transition itself. Each is interpreted by gate: n >= 0 means
	// "count == n", n < 0 means "count != -n".
	NBeforeDown int
	NBeforeUp   int
	NUp         int

	keysDown  uint8
	isDown    bool
	canToggle bool

	repeatedKey   int // index into Keys, or -1
	repeatingKey  int // index into Keys, or -1
	repeatedAgain bool
}

// NewMultiRule returns a MultiRule with its toggle armed from the start
// and no repeat tracked, ready to watch Keys.
func NewMultiRule(keys []keycode.Code, downPress, upPress [2]keycode.Code, nBeforeDown, nBeforeUp, nUp int) *MultiRule {
	r := &MultiRule{
		DownPress:    downPress,
		UpPress:      upPress,
		NBeforeDown:  nBeforeDown,
		NBeforeUp:    nBeforeUp,
		NUp:          nUp,
		canToggle:    true,
		repeatedKey:  -1,
		repeatingKey: -1,
	}
	copy(r.Keys[:], keys)
	return r
}

func (r *MultiRule) validPositions() []int {
	positions := make([]int, 0, len(r.Keys))
	for i, k := range r.Keys {
		if k == keycode.Reserved {
			break
		}
		positions = append(positions, i)
	}
	return positions
}

func gate(n int, count int) bool {
	if n >= 0 {
		return count == n
	}
	return count != -n
}

type multiAction struct {
	rewriteTo keycode.Code
	rewrite   bool
	suppress  bool
}

// process advances r's state machine for ev and reports what the
// multi-key stage should do with the event: pass it through unchanged,
// rewrite its code (and stop consulting any later multi-key rule), or
// suppress it.
func (r *MultiRule) process(ev ievent.Event) (multiAction, []Emission) {
	positions := r.validPositions()
	matchPos := -1
	for _, j := range positions {
		if r.Keys[j] == ev.KeyCode() {
			matchPos = j
			break
		}
	}
	if matchPos == -1 {
		return multiAction{}, nil
	}

	r.trackRepeat(matchPos, ev.Value)

	heldForReconcile := r.keysDown | (1 << uint(matchPos))

	if ev.Value == ievent.Up {
		r.keysDown &^= 1 << uint(matchPos)
	} else {
		r.keysDown |= 1 << uint(matchPos)
	}

	ndown := bits.OnesCount8(r.keysDown)
	ntotal := len(positions)

	if !r.canToggle {
		n := r.NBeforeDown
		if r.isDown {
			n = r.NBeforeUp
		}
		r.canToggle = gate(n, ndown)
	}

	fire := false
	if r.canToggle {
		if !r.isDown && ndown == ntotal {
			fire = true
		} else if r.isDown && gate(r.NUp, ndown) {
			fire = true
		}
	}

	if fire {
		r.isDown = !r.isDown
		n := r.NBeforeDown
		if r.isDown {
			n = r.NBeforeUp
		}
		r.canToggle = gate(n, ndown)
		out := r.emitTransition(positions, heldForReconcile)
		return multiAction{suppress: true}, out
	}

	if r.isDown && ev.Value == ievent.Repeat && matchPos == r.repeatedKey && r.isSimplePressPair() {
		return multiAction{rewrite: true, rewriteTo: r.DownPress[0]}, nil
	}
	if r.isDown {
		return multiAction{suppress: true}, nil
	}
	return multiAction{}, nil
}

// isSimplePressPair reports whether the rule presses exactly one key on
// down and releases the same key on up -- the shape step 6 of the
// multi-key stage forwards a live kernel repeat for.
func (r *MultiRule) isSimplePressPair() bool {
	return r.DownPress[0] != keycode.Reserved && r.DownPress[1] == keycode.Reserved &&
		r.UpPress[0] == keycode.Reserved && r.UpPress[1] == r.DownPress[0]
}

func (r *MultiRule) trackRepeat(matchPos int, value ievent.Value) {
	switch {
	case value == ievent.Repeat:
		switch {
		case r.repeatedKey == -1:
			r.repeatedKey = matchPos
		case matchPos == r.repeatedKey:
			r.repeatedAgain = true
			r.repeatingKey = -1
		case r.repeatingKey == matchPos && !r.repeatedAgain:
			r.repeatedKey = matchPos
			r.repeatingKey = -1
			r.repeatedAgain = false
		default:
			r.repeatingKey = matchPos
			r.repeatedAgain = false
		}
	case value == ievent.Up:
		if matchPos == r.repeatedKey {
			r.repeatedKey = -1
			r.repeatingKey = -1
			r.repeatedAgain = false
		} else if matchPos == r.repeatingKey {
			r.repeatingKey = -1
		}
	}
}

// emitTransition builds the reconciling + action emissions for a flip
// that just happened. held is the held-key bitmap as of just before this
// event, with the triggering position forced on regardless of direction,
// so a releasing key still counts as "held" for the up-transition pass.
func (r *MultiRule) emitTransition(positions []int, held uint8) []Emission {
	isDown := r.isDown
	P := r.UpPress
	if isDown {
		P = r.DownPress
	}
	exceptIdx := 0
	if !isDown {
		exceptIdx = 1
	}

	var out []Emission

	if !isDown {
		if P[0] != keycode.Reserved {
			out = append(out, synth(ievent.NewKeyEvent(P[0], ievent.Down)))
		}
		if P[1] != keycode.Reserved {
			out = append(out, synth(ievent.NewKeyEvent(P[1], ievent.Up)))
		}
	}

	for _, j := range positions {
		if held&(1<<uint(j)) == 0 {
			continue
		}
		k := r.Keys[j]
		if k == P[exceptIdx] {
			P[exceptIdx] = keycode.Reserved
			continue
		}
		if isDown {
			out = append(out, synth(ievent.NewKeyEvent(k, ievent.Up)))
		} else {
			out = append(out, synth(ievent.NewKeyEvent(k, ievent.Down)))
		}
	}

	if isDown {
		if P[0] != keycode.Reserved {
			out = append(out, synth(ievent.NewKeyEvent(P[0], ievent.Down)))
		}
		if P[1] != keycode.Reserved {
			out = append(out, synth(ievent.NewKeyEvent(P[1], ievent.Up)))
		}
	}

	return out
}
