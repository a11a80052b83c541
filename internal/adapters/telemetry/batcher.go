package telemetry

import (
	"bytes"
	"sync"
)

// DefaultBatchSize is the number of buffered bytes that triggers a flush.
const DefaultBatchSize = 4096

// lineBatcher buffers span output and hands complete lines to flush once the
// buffer grows past its limit or the span ends.
type lineBatcher struct {
	limit int
	flush func(string)

	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func newLineBatcher(limit int, flush func(string)) *lineBatcher {
	if limit <= 0 {
		limit = DefaultBatchSize
	}
	return &lineBatcher{limit: limit, flush: flush}
}

func (b *lineBatcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return len(p), nil
	}
	n, _ := b.buf.Write(p)
	if b.buf.Len() >= b.limit {
		b.emitLocked(false)
	}
	return n, nil
}

// Close emits everything left in the buffer, including a trailing partial line.
func (b *lineBatcher) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.emitLocked(true)
}

// emitLocked must be called with mu held. Without all, a trailing partial
// line stays buffered.
func (b *lineBatcher) emitLocked(all bool) {
	data := b.buf.Bytes()
	end := len(data)
	if !all {
		end = bytes.LastIndexByte(data, '\n') + 1
		if end == 0 {
			end = len(data)
		}
	}
	if end == 0 {
		return
	}
	chunk := string(bytes.TrimRight(data[:end], "\n"))
	rest := append([]byte(nil), data[end:]...)
	b.buf.Reset()
	b.buf.Write(rest)
	if chunk != "" && b.flush != nil {
		b.flush(chunk)
	}
}
