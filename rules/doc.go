// Package rules holds the statically baked-in remapping configuration:
// the map, tap/hold and multi-key rule tables the engine runs, plus a
// handful of cosmetic constructors for the common multi-key press-pair
// shapes (press-while-down, press-once, swap). There is no runtime
// loading or parsing -- rules are Go literals, compiled in, per the
// spec's External Interfaces section ("supplied at build time via three
// inclusion points").
package rules
