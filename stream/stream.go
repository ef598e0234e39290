// Package stream implements the bounded-batch, retry-safe record I/O
// described in the spec's Event I/O and buffering component: a Reader
// that blocks for at least one record and replaces its buffer contents on
// every pull, and a Writer that batches up to MaxEvents records and
// flushes with a single write(2), forcing a flush whenever the engine
// asks for one.
//
// Both sides talk golang.org/x/sys/unix directly on a raw file
// descriptor, the same idiom core/engine_linux.go uses for termios
// ioctls: call the syscall, retry transparently on EINTR, and treat any
// other error as fatal.
package stream

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"github.com/badu/evremap/ievent"
)

// MaxEvents is the default capacity of both the read and the write
// buffer, matching MAX_EVENTS in the spec.
const MaxEvents = 10

// retry re-runs fn for as long as it fails with EINTR. It returns fn's
// first result that is not an EINTR failure, including n == 0 with a
// nil error; callers treat that case themselves.
func retry(fn func() (int, error)) (int, error) {
	for {
		n, err := fn()
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return n, err
		}
		return n, nil
	}
}

// Reader pulls fixed-layout records off fd in batches of up to
// MaxEvents, blocking until at least one record is available.
type Reader struct {
	fd    int
	raw   []byte
	batch []ievent.Event
}

// NewReader wraps fd (typically int(os.Stdin.Fd())).
func NewReader(fd int) *Reader {
	return &Reader{fd: fd, raw: make([]byte, ievent.Size*MaxEvents)}
}

// Fill blocks until at least one record is available, replaces the
// reader's internal batch with everything that arrived, and returns it.
// A zero-length, nil-error result never happens: Fill either returns at
// least one event or a non-nil error (io.EOF on a clean close).
func (r *Reader) Fill() ([]ievent.Event, error) {
	n, err := retry(func() (int, error) {
		return unix.Read(r.fd, r.raw)
	})
	if err != nil {
		return nil, fmt.Errorf("stream: read: %w", err)
	}
	if n == 0 {
		return nil, io.EOF
	}
	if n%ievent.Size != 0 {
		return nil, fmt.Errorf("stream: short record: read %d bytes, not a multiple of %d", n, ievent.Size)
	}

	count := n / ievent.Size
	if cap(r.batch) < count {
		r.batch = make([]ievent.Event, count)
	}
	r.batch = r.batch[:count]
	for i := 0; i < count; i++ {
		off := i * ievent.Size
		ev, derr := ievent.Decode(r.raw[off : off+ievent.Size])
		if derr != nil {
			return nil, fmt.Errorf("stream: decode: %w", derr)
		}
		r.batch[i] = ev
	}
	return r.batch, nil
}
