// Package engine is the rule engine at the center of evremap: a pure
// function of (current state, next input event) -> emissions. It owns no
// file descriptors and performs no I/O or sleeping itself -- that belongs
// to package stream, whose Reader supplies the events and whose Writer
// plays the Emissions out; cmd/evremap connects both to an Engine.
//
// Every input key event is pushed through three stages in a fixed order:
// map, tap/hold, then multi-key. Each stage may rewrite the event's code,
// suppress it outright, and/or contribute synthetic emissions of its own.
package engine
