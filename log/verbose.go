//go:build verbose

package log

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// Init opens /tmp/evremap-<username>.log and returns a zerolog.Logger
// writing to it, matching the field-name and timestamp conventions the
// rest of the teacher's diagnostic tooling uses.
func Init() *zerolog.Logger {
	usr, err := user.Current()
	name := "unknown"
	if err == nil {
		name = usr.Username
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("evremap-%s.log", name))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		// Logging setup failing must not stop the filter from running;
		// fall back to a disabled logger.
		nop := zerolog.Nop()
		return &nop
	}

	zerolog.TimestampFieldName = "t"
	zerolog.LevelFieldName = "l"
	zerolog.MessageFieldName = "m"

	logger := zerolog.New(file).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logger.Info().Str("path", path).Msg("verbose logging started")
	return &logger
}

// ReportHost logs a one-shot snapshot of CPU, memory and host info at
// startup, the same diagnostics the teacher's profiling playground
// gathered from gopsutil, now captured once instead of polled.
func ReportHost(logger *zerolog.Logger) {
	if counts, err := cpu.Counts(true); err == nil {
		logger.Info().Int("logical_cpus", counts).Msg("host cpu")
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Info().
			Uint64("total_bytes", vm.Total).
			Uint64("available_bytes", vm.Available).
			Float64("used_percent", vm.UsedPercent).
			Msg("host memory")
	}
	if info, err := host.Info(); err == nil {
		logger.Info().
			Str("os", info.OS).
			Str("platform", info.Platform).
			Str("kernel_version", info.KernelVersion).
			Msg("host info")
	}
}
