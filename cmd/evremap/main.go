// Command evremap is a stream filter: it reads kernel input-event
// records on stdin, rewrites them through the baked-in rule set, and
// writes the result on stdout. It takes no flags and reads no
// configuration file -- deployment wires stdin/stdout to an evdev
// interceptor and a uinput device respectively; that wiring is outside
// this program's concern.
package main

import (
	"os"
	"time"

	"github.com/badu/evremap/engine"
	"github.com/badu/evremap/log"
	"github.com/badu/evremap/rules"
	"github.com/badu/evremap/stream"
)

func main() {
	logger := log.Init()
	log.ReportHost(logger)

	eng := engine.New(rules.Map, rules.TapHold, rules.MultiKey, time.Now)
	reader := stream.NewReader(int(os.Stdin.Fd()))
	writer := stream.NewWriter(int(os.Stdout.Fd()))

	if err := run(eng, reader, writer); err != nil {
		logger.Fatal().Err(err).Msg("evremap exiting")
		os.Exit(1)
	}
}

// run drives the single-threaded "read a batch, process each event
// end-to-end, repeat" loop, forcing a write flush whenever the read
// buffer runs dry so latency never exceeds one input-event round. The
// source closing is as fatal as any other read error: this filter sits
// in the middle of a live input pipeline and has nothing to do once its
// stdin is gone.
func run(eng *engine.Engine, reader *stream.Reader, writer *stream.Writer) error {
	for {
		batch, err := reader.Fill()
		if err != nil {
			return err
		}

		for _, ev := range batch {
			ems := eng.Process(ev)
			if err := writer.EmitAll(ems); err != nil {
				return err
			}
		}

		if err := writer.Flush(); err != nil {
			return err
		}
	}
}
