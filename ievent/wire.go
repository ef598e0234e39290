package ievent

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Size is the on-the-wire length of a single record: a 16-byte timeval
// (two 8-byte fields on a 64-bit host) followed by type, code and value.
const Size = 16 + 2 + 2 + 4

// Encode writes e into buf (which must be at least Size bytes) using the
// host's native byte order, matching struct input_event as the kernel
// writes it. It never allocates, so stream.Writer can encode straight
// into a reused batch buffer.
func Encode(buf []byte, e Event) {
	if len(buf) < Size {
		panic(fmt.Sprintf("ievent: buffer too small: %d < %d", len(buf), Size))
	}
	sec := e.Time.Unix()
	usec := int64(e.Time.Nanosecond() / 1000)
	binary.NativeEndian.PutUint64(buf[0:8], uint64(sec))
	binary.NativeEndian.PutUint64(buf[8:16], uint64(usec))
	binary.NativeEndian.PutUint16(buf[16:18], uint16(e.Type))
	binary.NativeEndian.PutUint16(buf[18:20], e.Code)
	binary.NativeEndian.PutUint32(buf[20:24], uint32(e.Value))
}

// Decode reads a single record from buf (which must be at least Size
// bytes), the inverse of Encode.
func Decode(buf []byte) (Event, error) {
	if len(buf) < Size {
		return Event{}, fmt.Errorf("ievent: short record: %d bytes", len(buf))
	}
	sec := int64(binary.NativeEndian.Uint64(buf[0:8]))
	usec := int64(binary.NativeEndian.Uint64(buf[8:16]))
	return Event{
		Time:  time.Unix(sec, usec*1000),
		Type:  Type(binary.NativeEndian.Uint16(buf[16:18])),
		Code:  binary.NativeEndian.Uint16(buf[18:20]),
		Value: Value(int32(binary.NativeEndian.Uint32(buf[20:24]))),
	}, nil
}
