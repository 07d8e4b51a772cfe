package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

var errQueueClosed = errors.New("log queue is closed")

// queueWriter hands records to a single background goroutine that writes
// them to out in order. A full queue blocks the caller, so no record is ever
// dropped. Write failures of out are reported to report.
type queueWriter struct {
	out    io.WriteCloser
	report io.Writer

	mu      sync.RWMutex
	closed  bool
	records chan []byte
	drained chan struct{}
}

func newQueueWriter(out io.WriteCloser, size int, report io.Writer) *queueWriter {
	q := &queueWriter{
		out:     out,
		report:  report,
		records: make(chan []byte, size),
		drained: make(chan struct{}),
	}
	go q.drain()
	return q
}

// Write copies p, zerolog reuses its event buffers once Write returns.
func (q *queueWriter) Write(p []byte) (int, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return 0, errQueueClosed
	}

	record := make([]byte, len(p))
	copy(record, p)
	q.records <- record

	return len(p), nil
}

func (q *queueWriter) drain() {
	defer close(q.drained)

	for record := range q.records {
		if _, err := q.out.Write(record); err != nil {
			fmt.Fprintf(q.report, "logger: writing record: %v\n", err)
		}
	}
}

// Close waits for every queued record to be written, then closes out.
func (q *queueWriter) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.records)
	q.mu.Unlock()

	<-q.drained
	return q.out.Close()
}
