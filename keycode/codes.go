// Package keycode holds the Linux kernel's KEY_* numbering
// (linux/input-event-codes.h) and the handful of lookup tables the rule
// engine needs on top of it: the reserved sentinel, the set of keys that
// count as modifiers, and the left/right mirrored-modifier pairs.
package keycode

// Code identifies a physical key using the kernel's evdev numbering.
type Code uint16

// Reserved is the sentinel meaning "no key" / "unused slot" / "ignored".
const Reserved Code = 0

// A representative subset of linux/input-event-codes.h -- enough to
// express home-row mods, tap/hold rules and lock-toggle chords. Extend as
// needed; the numbering is part of the kernel ABI and never changes.
const (
	Esc        Code = 1
	Key1       Code = 2
	Key2       Code = 3
	Key3       Code = 4
	Key4       Code = 5
	Key5       Code = 6
	Key6       Code = 7
	Key7       Code = 8
	Key8       Code = 9
	Key9       Code = 10
	Key0       Code = 11
	Minus      Code = 12
	Equal      Code = 13
	Backspace  Code = 14
	Tab        Code = 15
	Q          Code = 16
	W          Code = 17
	E          Code = 18
	R          Code = 19
	T          Code = 20
	Y          Code = 21
	U          Code = 22
	I          Code = 23
	O          Code = 24
	P          Code = 25
	LeftBrace  Code = 26
	RightBrace Code = 27
	Enter      Code = 28
	LeftCtrl   Code = 29
	A          Code = 30
	S          Code = 31
	D          Code = 32
	F          Code = 33
	G          Code = 34
	H          Code = 35
	J          Code = 36
	K          Code = 37
	L          Code = 38
	Semicolon  Code = 39
	Apostrophe Code = 40
	Grave      Code = 41
	LeftShift  Code = 42
	Backslash  Code = 43
	Z          Code = 44
	X          Code = 45
	C          Code = 46
	V          Code = 47
	B          Code = 48
	N          Code = 49
	M          Code = 50
	Comma      Code = 51
	Dot        Code = 52
	Slash      Code = 53
	RightShift Code = 54
	KPAsterisk Code = 55
	LeftAlt    Code = 56
	Space      Code = 57
	CapsLock   Code = 58
	F1         Code = 59
	F2         Code = 60
	F3         Code = 61
	F4         Code = 62
	F5         Code = 63
	F6         Code = 64
	F7         Code = 65
	F8         Code = 66
	F9         Code = 67
	F10        Code = 68
	NumLock    Code = 69
	ScrollLock Code = 70
	F11        Code = 87
	F12        Code = 88
	RightCtrl  Code = 97
	RightAlt   Code = 100
	Home       Code = 102
	Up         Code = 103
	PageUp     Code = 104
	Left       Code = 105
	Right      Code = 106
	End        Code = 107
	Down       Code = 108
	PageDown   Code = 109
	Insert     Code = 110
	Delete     Code = 111
	LeftMeta   Code = 125
	RightMeta  Code = 126
	Compose    Code = 127
)

// modifiers are the keys key_ismod() in the original C treats as
// "not a typing key" -- a release of one of these never starts a
// typing burst, and tap_mods governs whether pressing one of these
// triggers hold resolution on an armed tap/hold rule.
var modifiers = map[Code]struct{}{
	LeftShift: {}, RightShift: {},
	LeftCtrl: {}, RightCtrl: {},
	LeftAlt: {}, RightAlt: {},
	LeftMeta: {}, RightMeta: {},
}

// IsModifier reports whether code is one of the eight standard modifier
// keys (shift/ctrl/alt/meta, left and right).
func IsModifier(code Code) bool {
	_, ok := modifiers[code]
	return ok
}

// siblings mirrors each left-hand modifier to its right-hand counterpart
// and back, so the key-state shadow can treat LEFTCTRL and RIGHTCTRL (for
// example) as the same logical key when a tap/hold rule asks "is hold_key
// already down".
var siblings = map[Code]Code{
	LeftShift: RightShift, RightShift: LeftShift,
	LeftCtrl: RightCtrl, RightCtrl: LeftCtrl,
	LeftAlt: RightAlt, RightAlt: LeftAlt,
	LeftMeta: RightMeta, RightMeta: LeftMeta,
}

// Sibling returns the mirrored modifier for code (e.g. RightCtrl for
// LeftCtrl) and true, or (Reserved, false) if code has no mirror.
func Sibling(code Code) (Code, bool) {
	s, ok := siblings[code]
	return s, ok
}
