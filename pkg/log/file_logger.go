package log

import (
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// StreamLogger appends encoded events to a writer. It is safe for
// concurrent use. Encoding errors never reach the traced call; the first
// one is kept and reported by Err.
type StreamLogger struct {
	mu     sync.Mutex
	enc    *cbor.Encoder
	closer io.Closer
	count  int
	err    error
	done   bool
}

// NewStreamLogger returns a StreamLogger writing to w. The caller keeps
// ownership of w; Close does not close it.
func NewStreamLogger(w io.Writer) *StreamLogger {
	return &StreamLogger{enc: NewEncoder(w)}
}

// NewFileLogger opens path for appending (creating it with mode 0644) and
// returns a StreamLogger that owns the file.
func NewFileLogger(path string) (*StreamLogger, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	l := NewStreamLogger(f)
	l.closer = f
	return l, nil
}

// Log implements Logger. Events logged after Close are dropped.
func (l *StreamLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return
	}
	if err := l.enc.Encode(event); err != nil {
		if l.err == nil {
			l.err = err
		}
		return
	}
	l.count++
}

// Count returns the number of events written.
func (l *StreamLogger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Err returns the first encoding error, if any.
func (l *StreamLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close stops logging and closes the file opened by NewFileLogger.
// Repeated calls return nil.
func (l *StreamLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return nil
	}
	l.done = true
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

var _ Logger = (*StreamLogger)(nil)
