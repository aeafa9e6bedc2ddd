// Package pathnorm provides named, composable text normalizations for path
// name components.
//
// A [Pipeline] is an ordered sequence of [Step] values applied as a pure fold
// over an input string. Two pipelines are typically configured per file
// system: one producing the display form of a name from raw input, and one
// producing the canonical form from the display form (usually by adding case
// folding). The two pipelines are stored and invoked separately so that both
// forms of a name remain independently inspectable.
package pathnorm

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownStep indicates a normalization step name that is not in the
// catalog.
var ErrUnknownStep = errors.New("unknown normalization step")

// Step is a named, pure, total transform over Unicode text.
type Step struct {
	apply func(string) string
	name  string
}

// Name returns the catalog name of the step.
func (s Step) Name() string {
	return s.name
}

// Apply transforms the input. It is deterministic and never fails.
func (s Step) Apply(v string) string {
	if s.apply == nil {
		return v
	}

	return s.apply(v)
}

var (
	// NFC performs Unicode Normalization Form C (canonical composition).
	NFC = Step{name: "nfc", apply: norm.NFC.String}

	// NFD performs Unicode Normalization Form D (canonical decomposition).
	NFD = Step{name: "nfd", apply: norm.NFD.String}

	// CaseFold performs full Unicode case folding.
	CaseFold = Step{name: "fold", apply: foldUnicode}

	// CaseFoldASCII folds the ASCII letters A-Z only, leaving all other
	// runes untouched.
	CaseFoldASCII = Step{name: "fold-ascii", apply: foldASCII}
)

func foldUnicode(v string) string {
	return cases.Fold().String(v)
}

func foldASCII(v string) string {
	b := []byte(v)
	changed := false

	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}

	if !changed {
		return v
	}

	return string(b)
}

// ParseStep resolves a catalog name to its [Step].
func ParseStep(name string) (Step, error) {
	switch name {
	case NFC.name:
		return NFC, nil
	case NFD.name:
		return NFD, nil
	case CaseFold.name:
		return CaseFold, nil
	case CaseFoldASCII.name:
		return CaseFoldASCII, nil
	default:
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, name)
	}
}

// Pipeline is an immutable ordered sequence of normalization steps.
// The zero value is the identity pipeline.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a [Pipeline] applying the given steps in order.
func NewPipeline(steps ...Step) Pipeline {
	cp := make([]Step, len(steps))
	copy(cp, steps)

	return Pipeline{steps: cp}
}

// ParsePipeline resolves an ordered list of catalog names into a [Pipeline].
func ParsePipeline(names []string) (Pipeline, error) {
	steps := make([]Step, 0, len(names))

	for _, name := range names {
		step, err := ParseStep(name)
		if err != nil {
			return Pipeline{}, err
		}

		steps = append(steps, step)
	}

	return Pipeline{steps: steps}, nil
}

// Apply folds the input through each step in order.
func (p Pipeline) Apply(v string) string {
	for _, s := range p.steps {
		v = s.Apply(v)
	}

	return v
}

// Steps returns the ordered steps of the pipeline.
func (p Pipeline) Steps() []Step {
	cp := make([]Step, len(p.steps))
	copy(cp, p.steps)

	return cp
}
