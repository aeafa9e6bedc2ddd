package paths

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/MacroPower/memfs/pkg/pathmatch"
	"github.com/MacroPower/memfs/pkg/pathnorm"
	"github.com/MacroPower/memfs/pkg/pathtype"
	"github.com/MacroPower/memfs/pkg/syncs"
)

// Service is the path factory and equality authority for one file system
// configuration. Its configuration is immutable; the only mutable state is
// the late-bound owning file system reference, which is set exactly once via
// [Service.Bind] before the file system is exposed to callers. All other
// operations are pure and safe for concurrent use.
type Service struct {
	typ               pathtype.Type
	fs                syncs.SetOnce[any]
	empty             *Path
	display           pathnorm.Pipeline
	canonical         pathnorm.Pipeline
	canonicalEquality bool
}

// NewService creates a Service for the given path syntax. The display
// pipeline is applied to raw input; the canonical pipeline is applied on top
// of display output. When canonicalEquality is true, hashing and comparison
// use canonical forms; otherwise they use display forms.
func NewService(typ pathtype.Type, display, canonical pathnorm.Pipeline, canonicalEquality bool) *Service {
	s := &Service{
		typ:               typ,
		display:           display,
		canonical:         canonical,
		canonicalEquality: canonicalEquality,
	}
	s.empty = &Path{svc: s, names: []Name{{}}}

	return s
}

// Bind attaches the owning file system reference. It must be called exactly
// once, before any path escapes to external callers; a second call panics.
func (s *Service) Bind(fs any) {
	s.fs.Set(fs)
}

// FileSystem returns the owning file system reference, or nil if Bind has
// not been called yet.
func (s *Service) FileSystem() any {
	fs, ok := s.fs.Get()
	if !ok {
		return nil
	}

	return fs
}

// Separator returns the separator of the configured path syntax.
func (s *Service) Separator() string {
	return s.typ.Separator()
}

// Name creates a [Name] from raw text by applying the display pipeline and
// then the canonical pipeline. The dot names "." and ".." bypass
// normalization.
func (s *Service) Name(raw string) Name {
	switch raw {
	case ".":
		return Self
	case "..":
		return Parent
	}

	display := s.display.Apply(raw)
	canonical := s.canonical.Apply(display)

	return Name{Display: display, Canonical: canonical}
}

// Names creates a [Name] per element of raw, in order.
func (s *Service) Names(raw []string) []Name {
	names := make([]Name, len(raw))
	for i, r := range raw {
		names[i] = s.Name(r)
	}

	return names
}

// EmptyPath returns the empty relative path: no root, a single component
// whose display and canonical strings are both empty.
func (s *Service) EmptyPath() *Path {
	return s.empty
}

// CreateRoot creates an absolute root-only path.
func (s *Service) CreateRoot(root Name) *Path {
	return s.createPath(root, true, nil)
}

// CreateFileName creates a relative single-component path.
func (s *Service) CreateFileName(name Name) *Path {
	return s.createPath(Name{}, false, []Name{name})
}

// CreateRelativePath creates a relative path of the given components. An
// empty names slice yields the empty path.
func (s *Service) CreateRelativePath(names []Name) *Path {
	return s.createPath(Name{}, false, names)
}

// CreatePath creates a path with an optional root and the given components.
// With no root and no components it yields the empty path.
func (s *Service) CreatePath(root *Name, names []Name) *Path {
	if root == nil {
		return s.createPath(Name{}, false, names)
	}

	return s.createPath(*root, true, names)
}

func (s *Service) createPath(root Name, hasRoot bool, names []Name) *Path {
	if !hasRoot && len(names) == 0 {
		return s.empty
	}

	cp := make([]Name, len(names))
	copy(cp, names)

	return &Path{svc: s, root: root, hasRoot: hasRoot, names: cp}
}

// ParsePath parses one or more raw strings, joined with the separator, into
// a path. Empty raw strings and empty segments are dropped by the path
// syntax; syntax violations surface as [pathtype.ErrMalformedPath].
func (s *Service) ParsePath(raw ...string) (*Path, error) {
	parsed, err := s.typ.Parse(raw...)
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}

	if !parsed.HasRoot {
		return s.CreatePath(nil, s.Names(parsed.Names)), nil
	}

	root := s.Name(parsed.Root)

	return s.CreatePath(&root, s.Names(parsed.Names)), nil
}

// Render renders a path back to text using the configured syntax and each
// component's display form.
func (s *Service) Render(p *Path) string {
	names := make([]string, len(p.names))
	for i, n := range p.names {
		names[i] = n.Display
	}

	return s.typ.Render(p.root.Display, p.hasRoot, names)
}

// CreatePathMatcher compiles a "glob:<pattern>" or "regex:<pattern>"
// specification into a matcher over rendered path text.
func (s *Service) CreatePathMatcher(spec string) (*pathmatch.Matcher, error) {
	m, err := pathmatch.Compile(spec, s.typ.Separator())
	if err != nil {
		return nil, fmt.Errorf("create path matcher: %w", err)
	}

	return m, nil
}

// Hash computes an order-sensitive hash over the path's root and components,
// using the form selected by the service's equality mode. Paths equal under
// [Service.Compare] hash identically.
func (s *Service) Hash(p *Path) uint64 {
	d := xxhash.New()

	if p.hasRoot {
		_, _ = d.WriteString(s.chosen(p.root))
		_, _ = d.Write([]byte{1})
	} else {
		_, _ = d.Write([]byte{0})
	}

	for _, n := range p.names {
		_, _ = d.WriteString(s.chosen(n))
		// Parsed names never contain NUL, making it a component
		// delimiter. Directly constructed names could embed one; that
		// only risks a collision, never unequal hashes for equal paths.
		_, _ = d.Write([]byte{0})
	}

	return d.Sum64()
}

// Compare orders two paths: an absent root sorts before a present one, then
// roots and components compare lexicographically in the form selected by the
// equality mode, then a strict prefix sorts before its extension. Returns
// -1, 0, or 1.
func (s *Service) Compare(a, b *Path) int {
	if a.hasRoot != b.hasRoot {
		if !a.hasRoot {
			return -1
		}

		return 1
	}

	if a.hasRoot {
		if c := strings.Compare(s.chosen(a.root), s.chosen(b.root)); c != 0 {
			return c
		}
	}

	for i := 0; i < len(a.names) && i < len(b.names); i++ {
		if c := strings.Compare(s.chosen(a.names[i]), s.chosen(b.names[i])); c != 0 {
			return c
		}
	}

	switch {
	case len(a.names) < len(b.names):
		return -1
	case len(a.names) > len(b.names):
		return 1
	default:
		return 0
	}
}

// chosen returns the form of n that the equality mode selects.
func (s *Service) chosen(n Name) string {
	if s.canonicalEquality {
		return n.Canonical
	}

	return n.Display
}

func (s *Service) nameEqual(a, b Name) bool {
	return s.chosen(a) == s.chosen(b)
}
