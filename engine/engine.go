package engine

import (
	"github.com/badu/evremap/ievent"
	"github.com/badu/evremap/keycode"
)

// Engine pipes every input key event through the map, tap/hold and
// multi-key stages in that fixed order, and owns the shared state -- the
// key-state shadow and the typing detector -- those stages read and
// write as they go.
type Engine struct {
	mapRules []MapRule
	tapHold  []*TapHoldRule
	multi    []*MultiRule

	groups map[[2]keycode.Code]*tapHoldGroup

	shadow *KeyState
	typing *TypingDetector
}

// New builds an Engine from a baked-in rule set. now is the clock the
// typing detector is measured against (tap/hold repeat delays count
// repeat events and use no clock); pass time.Now outside of tests.
func New(mapRules []MapRule, tapHold []*TapHoldRule, multi []*MultiRule, now Clock) *Engine {
	return &Engine{
		mapRules: mapRules,
		tapHold:  tapHold,
		multi:    multi,
		groups:   newTapHoldGroups(tapHold),
		shadow:   NewKeyState(),
		typing:   NewTypingDetector(now),
	}
}

func (e *Engine) tapHoldGroup(r *TapHoldRule) []*TapHoldRule {
	g := e.groups[[2]keycode.Code{r.BaseKey, r.TapKey}]
	if g == nil {
		return []*TapHoldRule{r}
	}
	return g.rules
}

// Process advances the engine by one input event and returns everything
// that should reach the sink in order. An empty, non-nil-safe result
// means the event was entirely suppressed.
func (e *Engine) Process(ev ievent.Event) []Emission {
	if ev.IsScanNoise() {
		return nil
	}
	if !ev.IsKey() {
		out := []Emission{passThrough(ev)}
		return out
	}

	code, dropped := applyMap(e.mapRules, ev.KeyCode())
	if dropped {
		return nil
	}
	ev.Code = uint16(code)

	var typingActive bool
	if ev.Value != ievent.Up {
		typingActive = e.typing.Active()
	}

	var out []Emission
	suppressed := false
	for _, r := range e.tapHold {
		sup, ems := e.processTapHold(r, ev, typingActive)
		out = append(out, ems...)
		if sup {
			suppressed = true
		}
	}

	for _, r := range e.multi {
		action, ems := r.process(ev)
		out = append(out, ems...)
		if action.suppress {
			suppressed = true
		}
		if action.rewrite {
			ev.Code = uint16(action.rewriteTo)
			break
		}
	}

	if !suppressed {
		out = append(out, passThrough(ev))
	}

	e.recordWrites(out)
	return out
}

// recordWrites updates the key-state shadow and typing detector from
// every key emission about to reach the sink, exactly as the original
// wrote to its state matrix inside write_event rather than at decision
// time.
func (e *Engine) recordWrites(out []Emission) {
	for _, em := range out {
		if !em.Event.IsKey() {
			continue
		}
		code := em.Event.KeyCode()
		e.shadow.Observe(code, em.Event.Value)
		if em.Event.Value == ievent.Up && !keycode.IsModifier(code) {
			e.typing.NoteRelease()
		}
	}
}
