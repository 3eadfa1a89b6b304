package log

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/uastack/ua-go/pkg/statuscode"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ulog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("trace file was not created")
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ulog")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(endpointEvent("s", "opc.tcp://host", statuscode.Good))
		if err := logger.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	if got := countEvents(t, path); got != 2 {
		t.Errorf("event count = %d, want 2", got)
	}
}

func TestFileLoggerIgnoresLogAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ulog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(nodeIDEvent("s"))
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
	logger.Log(nodeIDEvent("s"))

	if got := countEvents(t, path); got != 1 {
		t.Errorf("event count = %d, want 1", got)
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ulog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				logger.Log(statusEvent("s", true))
			}
		}()
	}
	wg.Wait()
	logger.Close()

	if got := countEvents(t, path); got != 200 {
		t.Errorf("event count = %d, want 200", got)
	}
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "trace.ulog"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func countEvents(t *testing.T, path string) int {
	t.Helper()
	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	n := 0
	for {
		if _, err := r.Next(); err == io.EOF {
			return n
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		n++
	}
}

func TestStreamLoggerCountsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStreamLogger(&buf)

	logger.Log(nodeIDEvent("s"))
	logger.Log(statusEvent("s", false))

	if got := logger.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if err := logger.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
	// bytes.Buffer is not a Closer.
	if err := logger.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}

	r := NewStreamReader(&buf, Filter{})
	n := 0
	for _, err := range r.All() {
		if err != nil {
			t.Fatalf("All() error: %v", err)
		}
		n++
	}
	if n != 2 {
		t.Errorf("decoded %d events, want 2", n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestStreamLoggerKeepsFirstError(t *testing.T) {
	logger := NewStreamLogger(failingWriter{})
	logger.Log(nodeIDEvent("s"))
	logger.Log(nodeIDEvent("s"))

	if logger.Err() == nil {
		t.Fatal("Err() = nil, want write error")
	}
	if got := logger.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

type closeTracker struct {
	bytes.Buffer
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestStreamLoggerLeavesWriterOpen(t *testing.T) {
	w := &closeTracker{}
	logger := NewStreamLogger(w)
	logger.Log(nodeIDEvent("s"))

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if w.closed {
		t.Error("Close() closed a writer owned by the caller")
	}
	logger.Log(nodeIDEvent("s"))
	if got := logger.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}
