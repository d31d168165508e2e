package sink

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LineSink writes each delivered line to w, terminated by "\n", and logs
// delivery/finish events against a per-run correlation id.
type LineSink struct {
	w      io.Writer
	log    *zap.Logger
	runID  string
	nlines int
}

// NewLineSink returns a LineSink writing to w. A nil logger is replaced
// with zap.NewNop().
func NewLineSink(w io.Writer, log *zap.Logger) *LineSink {
	if log == nil {
		log = zap.NewNop()
	}

	return &LineSink{w: w, log: log, runID: uuid.NewString()}
}

// Deliver writes line followed by a newline.
func (s *LineSink) Deliver(line string) error {
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		s.log.Error("sink: write failed", zap.String("run_id", s.runID), zap.Error(err))

		return err
	}
	s.nlines++
	s.log.Debug("sink: delivered line", zap.String("run_id", s.runID), zap.Int("line_no", s.nlines))

	return nil
}

// Finish logs the total number of delivered lines for this run.
func (s *LineSink) Finish() {
	s.log.Info("sink: run finished", zap.String("run_id", s.runID), zap.Int("lines", s.nlines))
}
