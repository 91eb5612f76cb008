package gsp

import (
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ErrInvalidMinSupport is returned by Options.Validate when MinSup falls
// outside the (0,1] range the algorithm requires.
var ErrInvalidMinSupport = errorutil.New("minsup must be in (0,1]")

// Options carries the mining run's configuration surface: the minimum
// support threshold plus the optional time constraints and pattern-length
// bound. MaxK, MaxGap and MaxSpan have no zero-value default — unlike
// MinGap (whose natural rest state is 0), "no constraint" for them is a
// real, distinct value (Unbounded), so the zero value of Options is not
// directly usable for them. Build Options via NewOptions, which sets all
// three to Unbounded, then override the ones the caller wants constrained.
type Options struct {
	// MinSup is the minimum fraction of sequences (0,1] a pattern must
	// appear in to be considered frequent.
	MinSup float64
	// MaxK bounds pattern length (k).
	MaxK int
	// MaxGap bounds the element-index gap between successive matched
	// pattern elements.
	MaxGap int
	// MinGap is a strict lower bound on that same gap. Defaults to 0,
	// which under the strict ">" comparison still admits a gap of 1.
	MinGap int
	// MaxSpan bounds the element-index distance from the first to the
	// last matched pattern element.
	MaxSpan int
	// Verbose enables tracing at decision points (pattern emission,
	// candidate emission, pruning outcomes) via the package logger.
	Verbose bool
}

// NewOptions returns Options with MaxK, MaxGap and MaxSpan set to Unbounded
// and MinGap at its natural 0, ready for the caller to tighten as needed.
func NewOptions(minSup float64) Options {
	return Options{
		MinSup:  minSup,
		MaxK:    Unbounded,
		MaxGap:  Unbounded,
		MinGap:  0,
		MaxSpan: Unbounded,
	}
}

// Validate checks MinSup's range; it does not touch MaxK/MaxGap/MaxSpan,
// since 0 is a meaningful, distinct constraint value for those fields and
// silently promoting it to Unbounded would mask a caller mistake.
func (o *Options) Validate() error {
	if o.MinSup <= 0 || o.MinSup > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidMinSupport, o.MinSup)
	}
	return nil
}

// MinedPattern is a single mining result: a frequent pattern together with
// the number of dataset sequences it is contained in.
type MinedPattern struct {
	Pattern Sequence
	Support int
}

func (p MinedPattern) String() string {
	return fmt.Sprintf("%v (support=%d)", p.Pattern, p.Support)
}
