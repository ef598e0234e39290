// Package ievent defines the fixed-layout record exchanged with the
// kernel's evdev/uinput ABI (struct input_event) and the handful of
// predicates the rule engine needs over it.
package ievent

import (
	"time"

	"github.com/badu/evremap/keycode"
)

// Type is the evdev event category (EV_KEY, EV_SYN, EV_MISC, ...).
type Type uint16

const (
	Syn  Type = 0x00
	Key  Type = 0x01
	Misc Type = 0x04
)

// Value is the tri-state carried by EV_KEY events.
type Value int32

const (
	Up     Value = 0
	Down   Value = 1
	Repeat Value = 2
)

// SynReport is the code carried by a Syn-type event that closes an
// atomic input frame (EV_SYN / SYN_REPORT in linux/input.h).
const SynReport uint16 = 0

// ScanCode is the EV_MISC code that always precedes a real key event and
// must be dropped unconditionally (MSC_SCAN in linux/input.h).
const ScanCode uint16 = 0x04

// Event is the Go mirror of struct input_event. Time is carried purely
// for pass-through fidelity -- the rule engine never reads it; timing
// decisions use a coarse monotonic clock instead (see engine.Clock).
type Event struct {
	Time  time.Time
	Type  Type
	Code  uint16
	Value Value
}

// NewKeyEvent builds a KEY-type event for code/value, timestamped now.
func NewKeyEvent(code keycode.Code, value Value) Event {
	return Event{Time: time.Now(), Type: Key, Code: uint16(code), Value: value}
}

// Sync builds a SYN_REPORT event, timestamped now.
func Sync() Event {
	return Event{Time: time.Now(), Type: Syn, Code: SynReport, Value: 0}
}

// IsKey reports whether e is a key event.
func (e Event) IsKey() bool { return e.Type == Key }

// IsScanNoise reports whether e is the MISC/SCAN chatter that always
// precedes a real EV_KEY event and that must never reach the sink.
func (e Event) IsScanNoise() bool { return e.Type == Misc && e.Code == ScanCode }

// KeyCode returns e.Code as a keycode.Code; only meaningful when IsKey.
func (e Event) KeyCode() keycode.Code { return keycode.Code(e.Code) }
