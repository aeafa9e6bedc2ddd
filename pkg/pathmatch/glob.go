package pathmatch

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// globToRegex translates a glob pattern into an equivalent regular expression
// over path text using the given separator:
//
//   - "?" matches exactly one rune that is not the separator.
//   - "*" matches any run of runes without crossing a separator.
//   - "**" matches any run of runes, separators included.
//   - "[...]" matches one rune from the class ("!" negates, "-" ranges);
//     the class never matches the separator.
//   - "{a,b}" matches either alternative; groups do not nest.
//   - "\" escapes the next character.
func globToRegex(glob, separator string) (string, error) {
	t := globTranslator{
		glob:   glob,
		sep:    regexp.QuoteMeta(separator),
		sepRaw: separator,
	}

	return t.translate()
}

type globTranslator struct {
	out     strings.Builder
	glob    string
	sep     string
	sepRaw  string
	pos     int
	inGroup bool
}

func (t *globTranslator) translate() (string, error) {
	for t.pos < len(t.glob) {
		r := t.read()

		switch r {
		case '\\':
			lit, err := t.next("escape")
			if err != nil {
				return "", err
			}

			t.out.WriteString(regexp.QuoteMeta(string(lit)))

		case '?':
			t.writeNotSeparator()

		case '*':
			if t.pos < len(t.glob) && t.glob[t.pos] == '*' {
				t.pos++
				t.out.WriteString(".*")
			} else {
				t.writeNotSeparator()
				t.out.WriteByte('*')
			}

		case '[':
			if err := t.translateClass(); err != nil {
				return "", err
			}

		case '{':
			if t.inGroup {
				return "", fmt.Errorf("%w: nested group in glob %q", ErrInvalidPattern, t.glob)
			}

			t.inGroup = true
			t.out.WriteString("(?:")

		case '}':
			if t.inGroup {
				t.inGroup = false
				t.out.WriteByte(')')
			} else {
				t.out.WriteString(regexp.QuoteMeta("}"))
			}

		case ',':
			if t.inGroup {
				t.out.WriteByte('|')
			} else {
				t.out.WriteByte(',')
			}

		default:
			t.out.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	if t.inGroup {
		return "", fmt.Errorf("%w: unclosed group in glob %q", ErrInvalidPattern, t.glob)
	}

	return t.out.String(), nil
}

// read decodes the rune at the current position and advances past it.
func (t *globTranslator) read() rune {
	r, size := utf8.DecodeRuneInString(t.glob[t.pos:])
	t.pos += size

	return r
}

func (t *globTranslator) next(context string) (rune, error) {
	if t.pos >= len(t.glob) {
		return 0, fmt.Errorf("%w: dangling %s in glob %q", ErrInvalidPattern, context, t.glob)
	}

	return t.read(), nil
}

func (t *globTranslator) writeNotSeparator() {
	t.out.WriteString("[^" + t.sep + "]")
}

// translateClass consumes a character class body up to the closing bracket.
// A negated class additionally excludes the separator; a positive class
// silently drops the separator if listed, so a class can never match it.
func (t *globTranslator) translateClass() error {
	negated := false
	if t.pos < len(t.glob) && t.glob[t.pos] == '!' {
		t.pos++
		negated = true
		t.out.WriteString("[^" + t.sep)
	} else {
		t.out.WriteByte('[')
	}

	closed := false
	empty := true
	written := 0

	for t.pos < len(t.glob) {
		r := t.read()

		if r == ']' {
			closed = true

			break
		}

		empty = false

		switch r {
		case '\\':
			lit, err := t.next("escape")
			if err != nil {
				return err
			}

			t.writeClassChar(lit)
			written++

		case '-':
			t.out.WriteByte('-')
			written++

		default:
			if string(r) == t.sepRaw {
				continue
			}

			t.writeClassChar(r)
			written++
		}
	}

	// A positive class whose members were all dropped as separators
	// cannot match anything; a negated class still excludes the
	// separator itself.
	if !closed || empty || (!negated && written == 0) {
		return fmt.Errorf("%w: malformed character class in glob %q", ErrInvalidPattern, t.glob)
	}

	t.out.WriteByte(']')

	return nil
}

func (t *globTranslator) writeClassChar(r rune) {
	if r == '\\' || r == '^' || r == ']' {
		t.out.WriteByte('\\')
	}

	t.out.WriteRune(r)
}
