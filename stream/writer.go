package stream

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/badu/evremap/engine"
	"github.com/badu/evremap/ievent"
)

// Writer buffers up to MaxEvents records and flushes them with a single
// write(2), exactly as WriteEvent/flush is specified: append, flush on
// full, and the caller (cmd/evremap's main loop) forces one extra flush
// whenever the reader runs dry.
//
// Emit additionally restores the SYN_REPORT framing the original
// interception-k2k always produced after a synthetic key event -- see
// SPEC_FULL.md section 4.1 -- so downstream evdev/uinput consumers see
// well-formed input frames instead of a stream of bare EV_KEY records.
type Writer struct {
	fd    int
	raw   []byte
	queue []ievent.Event
	// Delay is slept between a synthetic key event and the SYN_REPORT
	// that closes its frame. Zero disables the sleep (used by tests).
	Delay time.Duration
}

// NewWriter wraps fd (typically int(os.Stdout.Fd())).
func NewWriter(fd int) *Writer {
	return &Writer{
		fd:    fd,
		raw:   make([]byte, 0, ievent.Size*MaxEvents),
		queue: make([]ievent.Event, 0, MaxEvents),
		Delay: engine.SyntheticKeyDelay,
	}
}

// Emit appends em's event to the pending batch, flushing as soon as the
// batch reaches MaxEvents. Synthetic emissions are immediately followed
// by a SYN_REPORT.
func (w *Writer) Emit(em engine.Emission) error {
	if err := w.append(em.Event); err != nil {
		return err
	}
	if em.Synthetic {
		if w.Delay > 0 {
			time.Sleep(w.Delay)
		}
		if err := w.append(ievent.Sync()); err != nil {
			return err
		}
	}
	return nil
}

// EmitAll is a convenience wrapper over Emit for a full emission slice,
// as returned by engine.Engine.Process.
func (w *Writer) EmitAll(ems []engine.Emission) error {
	for _, em := range ems {
		if err := w.Emit(em); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) append(e ievent.Event) error {
	w.queue = append(w.queue, e)
	if len(w.queue) >= MaxEvents {
		return w.Flush()
	}
	return nil
}

// Flush writes every queued record with a single write(2), retrying on
// EINTR and advancing past whatever the kernel already accepted so a
// retry never duplicates a record.
func (w *Writer) Flush() error {
	if len(w.queue) == 0 {
		return nil
	}
	need := len(w.queue) * ievent.Size
	if cap(w.raw) < need {
		w.raw = make([]byte, need)
	}
	buf := w.raw[:need]
	for i, e := range w.queue {
		off := i * ievent.Size
		ievent.Encode(buf[off:off+ievent.Size], e)
	}

	for len(buf) > 0 {
		n, err := retry(func() (int, error) {
			return unix.Write(w.fd, buf)
		})
		if err != nil {
			w.queue = w.queue[:0]
			return fmt.Errorf("stream: write: %w", err)
		}
		if n == 0 {
			w.queue = w.queue[:0]
			return errors.New("stream: write: no progress")
		}
		buf = buf[n:]
	}
	w.queue = w.queue[:0]
	return nil
}
