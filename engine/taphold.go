package engine

import (
	"github.com/badu/evremap/ievent"
	"github.com/badu/evremap/keycode"
)

// TapHoldRule gives a single physical key, BaseKey, two personalities:
// tapped briefly it sends TapKey, held it sends HoldKey. RepeatKey and
// RepeatDelay add a third personality reachable only once the kernel's
// own auto-repeat kicks in (e.g. a home-row key that, held long enough
// past the first few repeats, starts sending arrow keys instead of
// holding a modifier forever). ActionKey lets a specific other key, when
// pressed while armed, additionally inject a one-shot press of its own
// rather than just promoting BaseKey to HoldKey.
type TapHoldRule struct {
	BaseKey, TapKey, HoldKey keycode.Code

	// RepeatKey, if not Reserved, is what BaseKey's held repeats turn
	// into once RepeatDelay kernel repeats of BaseKey have been absorbed.
	RepeatKey   keycode.Code
	RepeatDelay int

	// ActionKey, if not Reserved, restricts hold-resolution to exactly
	// this other key and additionally injects ActionKey's own down once
	// the hold is confirmed on BaseKey's release. Reserved means "any
	// other key triggers hold", the common case.
	ActionKey keycode.Code

	// HoldImmediately presses HoldKey the instant BaseKey arms, instead
	// of waiting for a second key to confirm the hold.
	HoldImmediately bool

	// TapTyping lets an active typing burst force an immediate tap even
	// when HoldKey would otherwise be a candidate, so home-row mods don't
	// fire spuriously mid-sentence.
	TapTyping bool

	// TapMods controls whether pressing a modifier key while armed counts
	// as the "other key" that triggers hold resolution. Most home-row-mod
	// setups leave this false, since chording two modifiers together
	// (e.g. shift+the-home-row-mod) is a common and intentional tap, not
	// a hold trigger.
	TapMods bool

	act       ActState
	currDelay int
	wasHeld   bool
}

// group is the coordination unit for the "was held" propagation: rules
// sharing the same BaseKey+TapKey must all see a hold committed through
// any one of them, since they are really facets of the same physical key.
type tapHoldGroup struct {
	rules []*TapHoldRule
}

func newTapHoldGroups(rules []*TapHoldRule) map[[2]keycode.Code]*tapHoldGroup {
	groups := make(map[[2]keycode.Code]*tapHoldGroup)
	for _, r := range rules {
		key := [2]keycode.Code{r.BaseKey, r.TapKey}
		g := groups[key]
		if g == nil {
			g = &tapHoldGroup{}
			groups[key] = g
		}
		g.rules = append(g.rules, r)
	}
	return groups
}

func (e *Engine) processTapHold(r *TapHoldRule, ev ievent.Event, typingActive bool) (suppressed bool, out []Emission) {
	code := ev.KeyCode()

	if code == r.BaseKey {
		switch ev.Value {
		case ievent.Down:
			return e.taphold0Down(r, typingActive)
		case ievent.Repeat:
			return e.taphold0Repeat(r)
		case ievent.Up:
			return e.taphold0Up(r)
		}
		return false, nil
	}

	if r.act.IsArmed() && ev.Value == ievent.Down && r.triggersHold(code) {
		return e.taphold0Commit(r, typingActive)
	}

	return false, nil
}

// triggersHold reports whether a DOWN of code, observed while this rule
// is armed, should be considered for hold resolution: either ActionKey
// is unconfigured (any key qualifies) or code is specifically ActionKey,
// and in either case a modifier only qualifies when TapMods is set.
func (r *TapHoldRule) triggersHold(code keycode.Code) bool {
	if r.ActionKey != keycode.Reserved && code != r.ActionKey {
		return false
	}
	if keycode.IsModifier(code) && !r.TapMods {
		return false
	}
	return true
}

func (e *Engine) taphold0Down(r *TapHoldRule, typingActive bool) (bool, []Emission) {
	if !r.act.IsIdle() {
		return false, nil
	}
	r.wasHeld = false

	if (r.TapTyping && typingActive) || e.shadow.IsDown(r.HoldKey) {
		r.act = Acting(r.TapKey)
		return true, []Emission{synth(ievent.NewKeyEvent(r.TapKey, ievent.Down))}
	}

	r.act = Armed()
	r.currDelay = r.RepeatDelay
	var out []Emission
	if r.HoldImmediately {
		out = append(out, synth(ievent.NewKeyEvent(r.HoldKey, ievent.Down)))
	}
	return true, out
}

func (e *Engine) taphold0Repeat(r *TapHoldRule) (bool, []Emission) {
	if r.act.IsArmed() {
		if r.RepeatKey == keycode.Reserved {
			return true, nil
		}
		if r.currDelay > 0 {
			r.currDelay--
			return true, nil
		}
		var out []Emission
		if r.HoldImmediately {
			out = append(out, synth(ievent.NewKeyEvent(r.HoldKey, ievent.Up)))
		}
		r.act = Acting(r.RepeatKey)
		// The delay-expiring repeat both establishes RepeatKey (a down
		// downstream has never seen) and reflects that this particular
		// input tick was itself a repeat, not a fresh press.
		out = append(out,
			synth(ievent.NewKeyEvent(r.RepeatKey, ievent.Down)),
			synth(ievent.NewKeyEvent(r.RepeatKey, ievent.Repeat)),
		)
		return true, out
	}
	if code, ok := r.act.ActingKey(); ok {
		return true, []Emission{synth(ievent.NewKeyEvent(code, ievent.Repeat))}
	}
	return false, nil
}

func (e *Engine) taphold0Up(r *TapHoldRule) (bool, []Emission) {
	if r.act.IsIdle() {
		return false, nil
	}

	var out []Emission
	if r.act.IsArmed() {
		if !r.wasHeld {
			r.act = Acting(r.TapKey)
			if r.HoldImmediately {
				out = append(out, synth(ievent.NewKeyEvent(r.HoldKey, ievent.Up)))
			}
			out = append(out, synth(ievent.NewKeyEvent(r.TapKey, ievent.Down)))
		} else {
			// A sibling rule sharing BaseKey+TapKey already committed a
			// hold (taphold0Commit marked this rule as held), so this
			// rule emits no tap of its own and just returns to idle.
			r.act = Idle()
			return true, out
		}
	}

	if r.ActionKey != keycode.Reserved {
		if code, ok := r.act.ActingKey(); ok && code == r.HoldKey {
			out = append(out, synth(ievent.NewKeyEvent(r.ActionKey, ievent.Down)))
		}
	}
	if code, ok := r.act.ActingKey(); ok {
		out = append(out, synth(ievent.NewKeyEvent(code, ievent.Up)))
	}
	r.act = Idle()
	return true, out
}

// taphold0Commit handles a DOWN of a key other than BaseKey while the
// rule is armed: the second key confirms either a late tap (the user is
// mid typing-burst) or a hold.
func (e *Engine) taphold0Commit(r *TapHoldRule, typingActive bool) (bool, []Emission) {
	// A specifically configured action key never reaches the sink itself
	// -- only the hold (or late tap) it confirms does, plus its own
	// delayed down once BaseKey releases. "Any key triggers hold" mode
	// (ActionKey == Reserved) always forwards the triggering key.
	suppressTrigger := r.ActionKey != keycode.Reserved

	if r.TapTyping && typingActive && !r.wasHeld {
		r.act = Acting(r.TapKey)
		return suppressTrigger, []Emission{synth(ievent.NewKeyEvent(r.TapKey, ievent.Down))}
	}

	for _, sib := range e.tapHoldGroup(r) {
		sib.wasHeld = true
	}
	r.act = Acting(r.HoldKey)
	var out []Emission
	if !r.HoldImmediately {
		out = append(out, synth(ievent.NewKeyEvent(r.HoldKey, ievent.Down)))
	}
	return suppressTrigger, out
}
