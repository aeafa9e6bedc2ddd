package pathtype

import (
	"fmt"
	"strings"
)

// Unix returns the single-root path syntax: "/" separates names and the only
// root is "/" itself.
func Unix() Type {
	return unixType{}
}

type unixType struct{}

func (unixType) Separator() string {
	return "/"
}

func (unixType) Parse(raw ...string) (ParsedPath, error) {
	joined := joinNonEmpty(raw, "/")

	var parsed ParsedPath

	if strings.HasPrefix(joined, "/") {
		parsed.Root = "/"
		parsed.HasRoot = true
	}

	for _, name := range splitNonEmpty(joined, '/') {
		if strings.ContainsRune(name, '\x00') {
			return ParsedPath{}, fmt.Errorf("%w: NUL character in %q", ErrMalformedPath, joined)
		}

		parsed.Names = append(parsed.Names, name)
	}

	return parsed, nil
}

func (unixType) Render(root string, hasRoot bool, names []string) string {
	joined := strings.Join(names, "/")

	if hasRoot {
		// The root already ends with the separator.
		return root + joined
	}

	return joined
}
