package engine

import (
	"time"

	"github.com/badu/evremap/ievent"
)

// SyntheticKeyDelay is slept by stream.Writer between a synthetic key
// event and the SYN_REPORT that closes its frame, generalizing the
// DELAY()/usleep(12000) the original interception-k2k ran after every
// write_key_event. It lives here, not in package stream, because it is a
// property of how convincingly the engine's synthetic events must be
// paced for a kernel consumer -- the engine just doesn't act on it itself.
const SyntheticKeyDelay = 12 * time.Millisecond

// Emission is one output record plus whether the engine synthesized it.
// Synthetic emissions get a trailing SYN_REPORT from stream.Writer;
// pass-through emissions of the original event do not, since the
// caller's own SYN_REPORT (already in the input stream) will follow.
type Emission struct {
	Event     ievent.Event
	Synthetic bool
}

func passThrough(e ievent.Event) Emission {
	return Emission{Event: e}
}

func synth(e ievent.Event) Emission {
	return Emission{Event: e, Synthetic: true}
}
