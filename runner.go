package recast

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/recast/pkg/domain"
	"github.com/aretw0/recast/pkg/schema"
)

// maxLine bounds a single input line for the runner's scanner.
const maxLine = 1 << 20

// Runner drives one descriptor over a line stream. It decodes each line and
// hands the records to a sink, which keeps the engine decoupled from the
// host's IO — the CLI, a test, and an embedding service all feed it the same
// way.
//
// Lines that do not match are skipped (the recoverable failure class for
// line-oriented input) unless Strict is set, in which case they abort the
// run. Framing is one record per line; multi-line matches are out of scope.
type Runner struct {
	Engine     *Engine
	Descriptor schema.Descriptor
	// Strict aborts on no-match lines instead of skipping them.
	Strict bool
}

// NewRunner creates a Runner for the descriptor using engine, or the default
// engine when engine is nil.
func NewRunner(engine *Engine, desc schema.Descriptor) *Runner {
	if engine == nil {
		engine = defaultEngine
	}
	return &Runner{Engine: engine, Descriptor: desc}
}

// Run decodes lines from in and passes each record to emit, stopping at the
// first error. Errors are wrapped with the 1-based line number. A sink error
// stops the run as-is.
func (r *Runner) Run(in io.Reader, emit func(domain.Record) error) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	line := 0
	for scanner.Scan() {
		line++
		rec, err := r.Engine.DecodeDescriptor(r.Descriptor, scanner.Text())
		if err != nil {
			if errors.Is(err, domain.ErrNoMatch) && !r.Strict {
				continue
			}
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// RunJSON decodes lines from in and writes each record to out as one JSON
// object per line.
func (r *Runner) RunJSON(in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	return r.Run(in, func(rec domain.Record) error {
		return enc.Encode(rec)
	})
}
