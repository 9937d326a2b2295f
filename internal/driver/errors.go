package driver

import (
	"go.uber.org/multierr"
)

// JoinErrors aggregates the per-file errors of a run; nil when every file
// succeeded.
func JoinErrors(results []FormatResult) error {
	var err error
	for _, r := range results {
		err = multierr.Append(err, r.Err)
	}
	return err
}

// Summary counts outcomes of a run.
type Summary struct {
	Files   int
	Changed int
	Cached  int
	Failed  int
}

// Summarize counts outcomes of a run.
func Summarize(results []FormatResult) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Changed:
			s.Changed++
		case r.Cached:
			s.Cached++
		}
	}
	return s
}
