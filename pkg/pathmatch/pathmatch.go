// Package pathmatch compiles "glob:" and "regex:" pattern specifications into
// predicates over rendered path text.
package pathmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrUnsupportedSyntax indicates a pattern specification with an
	// unrecognized or missing scheme prefix.
	ErrUnsupportedSyntax = errors.New("unsupported pattern syntax")

	// ErrInvalidPattern indicates a pattern that could not be compiled,
	// such as an unclosed character class or a broken regular expression.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Matcher is a compiled, stateless path-text predicate, reusable across any
// number of paths.
type Matcher struct {
	re *regexp.Regexp
}

// Matches reports whether the rendered path text matches the pattern. The
// whole text must match, not a substring.
func (m *Matcher) Matches(pathText string) bool {
	return m.re.MatchString(pathText)
}

// String returns the regular expression the matcher was compiled to.
func (m *Matcher) String() string {
	return m.re.String()
}

// Compile translates a pattern specification of the form "glob:<pattern>" or
// "regex:<pattern>" into a [Matcher]. Glob patterns are translated into an
// equivalent regular expression over path text rendered with the given
// separator. The scheme prefix is case sensitive; anything other than the two
// recognized schemes fails with [ErrUnsupportedSyntax].
func Compile(spec, separator string) (*Matcher, error) {
	scheme, pattern, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q must have the form \"syntax:pattern\"", ErrUnsupportedSyntax, spec)
	}

	var expr string

	switch scheme {
	case "glob":
		translated, err := globToRegex(pattern, separator)
		if err != nil {
			return nil, err
		}

		expr = translated

	case "regex":
		expr = pattern

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSyntax, scheme)
	}

	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return &Matcher{re: re}, nil
}
