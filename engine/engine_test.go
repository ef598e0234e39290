package engine_test

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/badu/evremap/engine"
	"github.com/badu/evremap/ievent"
	"github.com/badu/evremap/keycode"
)

func fixedClock(t time.Time) engine.Clock {
	return func() time.Time { return t }
}

func codes(ems []engine.Emission) []keycode.Code {
	out := make([]keycode.Code, 0, len(ems))
	for _, em := range ems {
		out = append(out, em.Event.KeyCode())
	}
	return out
}

func values(ems []engine.Emission) []ievent.Value {
	out := make([]ievent.Value, 0, len(ems))
	for _, em := range ems {
		out = append(out, em.Event.Value)
	}
	return out
}

func key(code keycode.Code, v ievent.Value) ievent.Event {
	return ievent.Event{Type: ievent.Key, Code: uint16(code), Value: v}
}

func TestSimpleRemap(t *testing.T) {
	eng := engine.New([]engine.MapRule{{From: keycode.CapsLock, To: keycode.Esc}}, nil, nil, time.Now)

	down := eng.Process(key(keycode.CapsLock, ievent.Down))
	up := eng.Process(key(keycode.CapsLock, ievent.Up))

	assert.DeepEqual(t, codes(down), []keycode.Code{keycode.Esc})
	assert.DeepEqual(t, values(down), []ievent.Value{ievent.Down})
	assert.DeepEqual(t, codes(up), []keycode.Code{keycode.Esc})
	assert.DeepEqual(t, values(up), []ievent.Value{ievent.Up})
}

func TestMapDrop(t *testing.T) {
	eng := engine.New([]engine.MapRule{{From: keycode.F1, To: keycode.Reserved}}, nil, nil, time.Now)

	assert.Equal(t, len(eng.Process(key(keycode.F1, ievent.Down))), 0)
	assert.Equal(t, len(eng.Process(key(keycode.F1, ievent.Up))), 0)
}

func TestMiscScanDropped(t *testing.T) {
	eng := engine.New(nil, nil, nil, time.Now)
	noise := ievent.Event{Type: ievent.Misc, Code: ievent.ScanCode, Value: 0x70039}

	out := eng.Process(noise)
	assert.Equal(t, len(out), 0)

	out = eng.Process(key(keycode.CapsLock, ievent.Down))
	assert.DeepEqual(t, codes(out), []keycode.Code{keycode.CapsLock})
}

func TestNonKeyPassesThroughUnchanged(t *testing.T) {
	eng := engine.New(nil, nil, nil, time.Now)
	syn := ievent.Event{Type: ievent.Syn, Code: ievent.SynReport}

	out := eng.Process(syn)
	assert.Equal(t, len(out), 1)
	assert.Equal(t, out[0].Synthetic, false)
	assert.DeepEqual(t, out[0].Event, syn)
}

func newTapHold() *engine.TapHoldRule {
	return &engine.TapHoldRule{
		BaseKey: keycode.A,
		TapKey:  keycode.A,
		HoldKey: keycode.LeftCtrl,
	}
}

func TestTapHoldCleanTap(t *testing.T) {
	rule := newTapHold()
	eng := engine.New(nil, []*engine.TapHoldRule{rule}, nil, time.Now)

	down := eng.Process(key(keycode.A, ievent.Down))
	assert.Equal(t, len(down), 0, "base-key down while idle is always suppressed")

	up := eng.Process(key(keycode.A, ievent.Up))
	assert.DeepEqual(t, codes(up), []keycode.Code{keycode.A, keycode.A})
	assert.DeepEqual(t, values(up), []ievent.Value{ievent.Down, ievent.Up})
}

func TestTapHoldCommitsToHold(t *testing.T) {
	rule := newTapHold()
	eng := engine.New(nil, []*engine.TapHoldRule{rule}, nil, time.Now)

	assert.Equal(t, len(eng.Process(key(keycode.A, ievent.Down))), 0)

	onX := eng.Process(key(keycode.X, ievent.Down))
	assert.DeepEqual(t, codes(onX), []keycode.Code{keycode.LeftCtrl, keycode.X})

	xUp := eng.Process(key(keycode.X, ievent.Up))
	assert.DeepEqual(t, codes(xUp), []keycode.Code{keycode.X})

	aUp := eng.Process(key(keycode.A, ievent.Up))
	assert.DeepEqual(t, codes(aUp), []keycode.Code{keycode.LeftCtrl})
	assert.DeepEqual(t, values(aUp), []ievent.Value{ievent.Up})
}

func TestTapHoldRepeat(t *testing.T) {
	rule := &engine.TapHoldRule{
		BaseKey:     keycode.A,
		TapKey:      keycode.A,
		HoldKey:     keycode.LeftCtrl,
		RepeatKey:   keycode.A,
		RepeatDelay: 2,
	}
	eng := engine.New(nil, []*engine.TapHoldRule{rule}, nil, time.Now)

	assert.Equal(t, len(eng.Process(key(keycode.A, ievent.Down))), 0)
	assert.Equal(t, len(eng.Process(key(keycode.A, ievent.Repeat))), 0)
	assert.Equal(t, len(eng.Process(key(keycode.A, ievent.Repeat))), 0)

	third := eng.Process(key(keycode.A, ievent.Repeat))
	assert.DeepEqual(t, codes(third), []keycode.Code{keycode.A, keycode.A})
	assert.DeepEqual(t, values(third), []ievent.Value{ievent.Down, ievent.Repeat})

	up := eng.Process(key(keycode.A, ievent.Up))
	assert.DeepEqual(t, codes(up), []keycode.Code{keycode.A})
	assert.DeepEqual(t, values(up), []ievent.Value{ievent.Up})
}

func TestTypingSuppressesHold(t *testing.T) {
	now := time.Now()
	clock := fixedClock(now)
	rule := &engine.TapHoldRule{
		BaseKey:   keycode.A,
		TapKey:    keycode.A,
		HoldKey:   keycode.LeftCtrl,
		TapTyping: true,
	}
	eng := engine.New(nil, []*engine.TapHoldRule{rule}, nil, clock)

	// Prime a typing burst: a non-modifier key release just before.
	eng.Process(key(keycode.B, ievent.Down))
	eng.Process(key(keycode.B, ievent.Up))

	down := eng.Process(key(keycode.A, ievent.Down))
	assert.DeepEqual(t, codes(down), []keycode.Code{keycode.A})
	assert.DeepEqual(t, values(down), []ievent.Value{ievent.Down})

	onX := eng.Process(key(keycode.X, ievent.Down))
	assert.DeepEqual(t, codes(onX), []keycode.Code{keycode.X})

	xUp := eng.Process(key(keycode.X, ievent.Up))
	assert.DeepEqual(t, codes(xUp), []keycode.Code{keycode.X})

	up := eng.Process(key(keycode.A, ievent.Up))
	assert.DeepEqual(t, codes(up), []keycode.Code{keycode.A})
	assert.DeepEqual(t, values(up), []ievent.Value{ievent.Up})
}
