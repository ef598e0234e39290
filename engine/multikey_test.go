package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/badu/evremap/engine"
	"github.com/badu/evremap/ievent"
	"github.com/badu/evremap/keycode"
)

func newDoubleShiftRule() *engine.MultiRule {
	return engine.NewMultiRule(
		[]keycode.Code{keycode.LeftShift, keycode.RightShift},
		[2]keycode.Code{keycode.CapsLock, keycode.Reserved},
		[2]keycode.Code{keycode.Reserved, keycode.CapsLock},
		0, 0, 0,
	)
}

func TestMultiKeyChordToggle(t *testing.T) {
	rule := newDoubleShiftRule()
	eng := engine.New(nil, nil, []*engine.MultiRule{rule}, time.Now)

	lsDown := eng.Process(key(keycode.LeftShift, ievent.Down))
	require.Equal(t, []keycode.Code{keycode.LeftShift}, codes(lsDown), "first shift isn't a chord yet, passes through")

	rsDown := eng.Process(key(keycode.RightShift, ievent.Down))
	require.Equal(t, []keycode.Code{keycode.LeftShift, keycode.RightShift, keycode.CapsLock}, codes(rsDown))
	require.Equal(t, []ievent.Value{ievent.Up, ievent.Up, ievent.Down}, values(rsDown))

	rsUp := eng.Process(key(keycode.RightShift, ievent.Up))
	require.Empty(t, rsUp, "constituent release is swallowed while the chord is engaged")

	lsUp := eng.Process(key(keycode.LeftShift, ievent.Up))
	require.Equal(t, []keycode.Code{keycode.CapsLock, keycode.LeftShift}, codes(lsUp))
	require.Equal(t, []ievent.Value{ievent.Up, ievent.Down}, values(lsUp))
}

func TestMultiKeyRepeatPassThrough(t *testing.T) {
	rule := engine.NewMultiRule(
		[]keycode.Code{keycode.LeftShift, keycode.RightShift},
		[2]keycode.Code{keycode.CapsLock, keycode.Reserved},
		[2]keycode.Code{keycode.Reserved, keycode.CapsLock},
		0, 0, 0,
	)
	eng := engine.New(nil, nil, []*engine.MultiRule{rule}, time.Now)

	eng.Process(key(keycode.LeftShift, ievent.Down))
	eng.Process(key(keycode.RightShift, ievent.Down))

	rep := eng.Process(key(keycode.LeftShift, ievent.Repeat))
	require.Equal(t, []keycode.Code{keycode.CapsLock}, codes(rep), "repeat of the established repeater forwards as the action key")
	require.Equal(t, []ievent.Value{ievent.Repeat}, values(rep))
}
