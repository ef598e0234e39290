package stream_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/badu/evremap/engine"
	"github.com/badu/evremap/ievent"
	"github.com/badu/evremap/keycode"
	"github.com/badu/evremap/stream"
)

func TestReaderFillDecodesBatch(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	evs := []ievent.Event{
		ievent.NewKeyEvent(keycode.A, ievent.Down),
		ievent.NewKeyEvent(keycode.A, ievent.Up),
	}
	buf := make([]byte, ievent.Size*len(evs))
	for i, e := range evs {
		ievent.Encode(buf[i*ievent.Size:(i+1)*ievent.Size], e)
	}
	_, err = w.Write(buf)
	require.NoError(t, err)

	reader := stream.NewReader(int(r.Fd()))
	batch, err := reader.Fill()
	require.NoError(t, err)
	require.Len(t, batch, 2)
	require.Equal(t, keycode.A, batch[0].KeyCode())
	require.Equal(t, ievent.Down, batch[0].Value)
	require.Equal(t, ievent.Up, batch[1].Value)
}

func TestReaderFillEOF(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, w.Close())

	reader := stream.NewReader(int(r.Fd()))
	_, err = reader.Fill()
	require.Error(t, err)
}

func TestWriterEmitAddsSyncAfterSynthetic(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	writer := stream.NewWriter(int(w.Fd()))
	writer.Delay = 0
	err = writer.Emit(engine.Emission{Event: ievent.NewKeyEvent(keycode.Esc, ievent.Down), Synthetic: true})
	require.NoError(t, err)
	require.NoError(t, writer.Flush())

	buf := make([]byte, ievent.Size*2)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, ievent.Size*2, n)

	first, err := ievent.Decode(buf[:ievent.Size])
	require.NoError(t, err)
	require.True(t, first.IsKey())
	require.Equal(t, keycode.Esc, first.KeyCode())

	second, err := ievent.Decode(buf[ievent.Size:])
	require.NoError(t, err)
	require.Equal(t, uint16(0), second.Code)
	require.False(t, second.IsKey())
}

func TestWriterFlushesOnFullBatch(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	writer := stream.NewWriter(int(w.Fd()))
	writer.Delay = time.Nanosecond
	for i := 0; i < stream.MaxEvents; i++ {
		require.NoError(t, writer.Emit(engine.Emission{Event: ievent.NewKeyEvent(keycode.A, ievent.Down)}))
	}

	buf := make([]byte, ievent.Size*stream.MaxEvents)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
}
