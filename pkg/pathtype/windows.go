package pathtype

import (
	"fmt"
	"strings"
)

// Windows returns the drive/UNC path syntax: "\" separates names, "/" is
// accepted as an equivalent separator on input but never produced on output,
// and a root is spelled either as a drive specifier ("C:\") or as a UNC
// host/share prefix ("\\host\share\").
func Windows() Type {
	return windowsType{}
}

type windowsType struct{}

func (windowsType) Separator() string {
	return `\`
}

func (windowsType) Parse(raw ...string) (ParsedPath, error) {
	joined := joinNonEmpty(raw, `\`)
	joined = strings.ReplaceAll(joined, "/", `\`)

	var parsed ParsedPath

	rest := joined

	switch {
	case strings.HasPrefix(joined, `\\`):
		root, remainder, err := parseUNCRoot(joined)
		if err != nil {
			return ParsedPath{}, err
		}

		parsed.Root = root
		parsed.HasRoot = true
		rest = remainder

	case strings.HasPrefix(joined, `\`):
		// A single leading separator would be relative to the current
		// drive, which has no meaning here.
		return ParsedPath{}, fmt.Errorf("%w: root-relative path %q", ErrMalformedPath, joined)

	case isDriveSpec(joined):
		if err := checkDriveLetter(joined); err != nil {
			return ParsedPath{}, err
		}

		parsed.Root = joined[:2] + `\`
		parsed.HasRoot = true
		rest = joined[2:]
	}

	for _, name := range splitNonEmpty(rest, '\\') {
		if err := checkName(name); err != nil {
			return ParsedPath{}, err
		}

		parsed.Names = append(parsed.Names, name)
	}

	return parsed, nil
}

func (windowsType) Render(root string, hasRoot bool, names []string) string {
	joined := strings.Join(names, `\`)

	if hasRoot {
		// Both root forms already end with the separator.
		return root + joined
	}

	return joined
}

// isDriveSpec reports whether joined starts with a two-character drive
// specifier like "C:".
func isDriveSpec(joined string) bool {
	return len(joined) >= 2 && joined[1] == ':'
}

func checkDriveLetter(joined string) error {
	c := joined[0]
	if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
		return fmt.Errorf("%w: invalid drive specifier %q", ErrMalformedPath, joined[:2])
	}

	// Drive-relative paths like "C:foo" are not supported.
	if len(joined) > 2 && joined[2] != '\\' {
		return fmt.Errorf("%w: drive-relative path %q", ErrMalformedPath, joined)
	}

	return nil
}

// parseUNCRoot extracts a "\\host\share\" root from joined, which must start
// with two separators. The remainder after the share is returned for name
// splitting.
func parseUNCRoot(joined string) (string, string, error) {
	rest := strings.TrimLeft(joined, `\`)

	host, rest, _ := strings.Cut(rest, `\`)
	share, rest, _ := strings.Cut(rest, `\`)

	if host == "" || share == "" {
		return "", "", fmt.Errorf("%w: UNC path %q requires a host and a share", ErrMalformedPath, joined)
	}

	if err := checkName(host); err != nil {
		return "", "", err
	}

	if err := checkName(share); err != nil {
		return "", "", err
	}

	return `\\` + host + `\` + share + `\`, rest, nil
}

// checkName rejects characters that Windows reserves in file names.
func checkName(name string) error {
	for _, c := range name {
		if c < 0x20 || strings.ContainsRune(`<>:"|?*`, c) {
			return fmt.Errorf("%w: reserved character %q in name %q", ErrMalformedPath, c, name)
		}
	}

	return nil
}
