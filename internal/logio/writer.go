package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function, such
// as a testing.T's Logf; it is suitable for log.SetOutput.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then logs any completed lines through Logf. This is all
// done while holding a lock, so that writing is safe from multiple
// goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync logs any partial line remaining in the buffer.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			lw.Logf("%s", bytes.TrimSuffix(line[:i], []byte{'\r'}))
			lw.buf.Next(i + 1)
		} else if all {
			lw.Logf("%s", line)
			lw.buf.Reset()
		} else {
			break
		}
	}
}
