package rules_test

import (
	"testing"

	"github.com/badu/evremap/keycode"
	"github.com/badu/evremap/rules"
)

func TestMapRulesHaveNoSelfLoops(t *testing.T) {
	for _, r := range rules.Map {
		if r.From == r.To {
			t.Errorf("map rule %v rewrites a key to itself", r)
		}
	}
}

func TestTapHoldRulesReferenceRealKeys(t *testing.T) {
	for _, r := range rules.TapHold {
		if r.BaseKey == keycode.Reserved || r.TapKey == keycode.Reserved || r.HoldKey == keycode.Reserved {
			t.Errorf("tap/hold rule %+v leaves a required key unset", r)
		}
	}
}

func TestMultiKeyRulesConfigured(t *testing.T) {
	if len(rules.MultiKey) == 0 {
		t.Fatal("expected at least one baked-in multi-key rule")
	}
}
