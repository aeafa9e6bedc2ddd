// Package pathtype defines the syntax policies for path strings.
//
// A [Type] knows how to split raw path text into an optional root plus name
// segments, and how to join them back. It is a pure, stateless policy: it
// never touches normalization or equality, which belong to the path service.
// Two policies ship by default, [Unix] and [Windows].
package pathtype

import "errors"

// ErrMalformedPath indicates raw path text that violates the syntax rules of
// a path type, such as an invalid drive specifier or a reserved character in
// a name.
var ErrMalformedPath = errors.New("malformed path")

// ParsedPath is the result of splitting raw path text: an optional root token
// plus the surviving name segments. Empty segments produced by leading,
// trailing, or repeated separators never appear in Names.
type ParsedPath struct {
	Root    string
	Names   []string
	HasRoot bool
}

// Type is the syntax policy for one family of path strings. Implementations
// are stateless and safe for concurrent use.
type Type interface {
	// Separator returns the canonical separator used when rendering.
	Separator() string

	// Parse joins the raw strings with the separator, identifies an
	// optional root token, and splits the remainder into name segments,
	// discarding any empty segments. It returns ErrMalformedPath when the
	// text violates the syntax rules of this type.
	Parse(raw ...string) (ParsedPath, error)

	// Render joins a root (if present) and name segments back into path
	// text. Rendering the result of Parse reconstructs the original text
	// modulo redundant separators and empty segments.
	Render(root string, hasRoot bool, names []string) string
}

// splitNonEmpty splits v on the single-byte separator sep, dropping empty
// segments.
func splitNonEmpty(v string, sep byte) []string {
	var names []string

	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || v[i] == sep {
			if i > start {
				names = append(names, v[start:i])
			}

			start = i + 1
		}
	}

	return names
}

// joinNonEmpty joins the non-empty elements of raw with sep, so that empty
// input strings never contribute a separator.
func joinNonEmpty(raw []string, sep string) string {
	joined := ""

	for _, r := range raw {
		if r == "" {
			continue
		}

		if joined == "" {
			joined = r
		} else {
			joined += sep + r
		}
	}

	return joined
}
