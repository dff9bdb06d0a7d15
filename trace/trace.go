// Package trace provides opt-in, zap-backed observability for sequence
// pipelines. The core combinator packages stay log-free; tracing happens by
// inserting pass-through stages at pipeline boundaries. Every stage log line
// carries the run id of the Pipeline that emitted it, so interleaved runs
// stay distinguishable.
package trace

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/flow_ive_go/seq"
)

// Pipeline tags every log line of one pipeline run with a shared run id.
type Pipeline struct {
	runID  string
	logger *zap.Logger
}

// New returns a Pipeline with a fresh run id logging through logger.
func New(logger *zap.Logger) *Pipeline {
	return &Pipeline{
		runID:  uuid.New().String(),
		logger: logger,
	}
}

// NewTest returns a Pipeline logging to stdout with a console encoder at
// debug level. Intended for tests and examples.
func NewTest() *Pipeline {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return New(zap.New(consoleCore))
}

// RunID returns the id shared by every log line of this Pipeline.
func (p *Pipeline) RunID() string { return p.runID }

// Stage returns a pass-through pipe stage that logs the length of the
// sequence flowing past name and returns the sequence unchanged.
func Stage[T any](p *Pipeline, name string) func(seq.Seq[T]) seq.Seq[T] {
	return func(s seq.Seq[T]) seq.Seq[T] {
		p.logger.Debug("pipeline stage",
			zap.String("run_id", p.runID),
			zap.String("stage", name),
			zap.Int("len", s.Len()),
		)
		return s
	}
}

// Value logs a scalar flowing through a chain or pipe accumulator and
// returns it unchanged.
func Value[T any](p *Pipeline, name string, v T) T {
	p.logger.Debug("pipeline value",
		zap.String("run_id", p.runID),
		zap.String("stage", name),
		zap.Any("value", v),
	)
	return v
}
