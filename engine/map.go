package engine

import "github.com/badu/evremap/keycode"

// MapRule rewrites From to To. A To of keycode.Reserved drops the key
// entirely -- down, repeat and up all vanish, as if the key did not
// exist. First matching rule wins; later rules for the same From are
// never consulted (see DESIGN.md, Open Questions).
type MapRule struct {
	From, To keycode.Code
}

// applyMap rewrites code through rules, reporting whether the event
// carrying it must be dropped.
func applyMap(rules []MapRule, code keycode.Code) (rewritten keycode.Code, drop bool) {
	for _, r := range rules {
		if r.From == code {
			if r.To == keycode.Reserved {
				return code, true
			}
			return r.To, false
		}
	}
	return code, false
}
