package progrock

import (
	"fmt"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/ukbuild/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that reports stage transitions to a logger.
// Each vertex is logged once when it starts and once when it completes.
type LogWriter struct {
	logger ports.Logger

	mu        sync.Mutex
	started   map[string]bool
	completed map[string]bool
}

// NewLogWriter creates a new LogWriter.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger:    logger,
		started:   make(map[string]bool),
		completed: make(map[string]bool),
	}
}

// WriteStatus processes a status update from the recorder.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		w.processVertex(v)
	}
	return nil
}

func (w *LogWriter) processVertex(v *progrock.Vertex) {
	if !w.started[v.Id] {
		w.started[v.Id] = true
		w.logger.Debug("stage started: " + v.Name)
	}

	if v.Completed == nil || w.completed[v.Id] {
		return
	}
	w.completed[v.Id] = true

	var elapsed time.Duration
	if v.Started != nil {
		elapsed = v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
	}

	if v.Error != nil {
		w.logger.Debug(fmt.Sprintf("stage failed: %s after %s: %s", v.Name, elapsed, *v.Error))
		return
	}
	w.logger.Debug(fmt.Sprintf("stage finished: %s in %s", v.Name, elapsed))
}

// Close does nothing.
func (w *LogWriter) Close() error {
	return nil
}
