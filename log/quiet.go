//go:build !verbose

package log

import "github.com/rs/zerolog"

// Init returns a disabled logger. The non-verbose build never opens a
// log file or imports gopsutil at all.
func Init() *zerolog.Logger {
	nop := zerolog.Nop()
	return &nop
}

// ReportHost is a no-op in the quiet build.
func ReportHost(*zerolog.Logger) {}
