package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its sinks (stdout and the rotated log file).
// A failing sink does not stop the others.
type CombinedWriter struct {
	sinks []io.Writer
}

func NewCombinedWriter(sinks ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, s := range sinks {
		if s != nil {
			cw.sinks = append(cw.sinks, s)
		}
	}
	return cw
}

func (cw *CombinedWriter) Sinks() int {
	return len(cw.sinks)
}

// Write reports len(p) as soon as one sink took the whole message,
// together with the combined errors of the sinks that failed.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		errs      error
		delivered bool
	)
	for i, s := range cw.sinks {
		n, err := s.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("sink %d: %w", i, err))
			continue
		}
		delivered = true
	}
	if !delivered {
		return 0, errs
	}
	return len(p), errs
}
