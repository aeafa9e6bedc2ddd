package paths

import (
	"errors"
	"fmt"
)

// ErrDifferentRoots indicates two paths whose roots make relativization
// impossible.
var ErrDifferentRoots = errors.New("cannot relativize paths with different roots")

// Path is an immutable structured path: an optional root [Name] plus an
// ordered sequence of component Names. A root-less Path always has at least
// one component; the empty relative path is represented as a single component
// whose display and canonical strings are both empty, never as zero
// components.
//
// Paths are created only by a [Service] and carry it for equality,
// comparison, rendering, and owner lookup. Mixing Paths from differently
// configured services is unsupported.
type Path struct {
	svc     *Service
	root    Name
	names   []Name
	hasRoot bool
}

// IsAbsolute reports whether the path has a root component.
func (p *Path) IsAbsolute() bool {
	return p.hasRoot
}

// Root returns the root component, if present.
func (p *Path) Root() (Name, bool) {
	return p.root, p.hasRoot
}

// NameCount returns the number of name components.
func (p *Path) NameCount() int {
	return len(p.names)
}

// NameAt returns the name component at index i. It panics if i is out of
// range.
func (p *Path) NameAt(i int) Name {
	if i < 0 || i >= len(p.names) {
		panic(fmt.Sprintf("paths: name index %d out of range [0, %d)", i, len(p.names)))
	}

	return p.names[i]
}

// Names returns a copy of the name components.
func (p *Path) Names() []Name {
	cp := make([]Name, len(p.names))
	copy(cp, p.names)

	return cp
}

// FileName returns the last name component, or false for a root-only path.
func (p *Path) FileName() (Name, bool) {
	if len(p.names) == 0 {
		return Name{}, false
	}

	return p.names[len(p.names)-1], true
}

// Parent returns the path without its last name component, or nil if the
// path has no parent: a root-only path, a single-name relative path, or the
// empty path.
func (p *Path) Parent() *Path {
	if len(p.names) == 0 || p.isEmpty() {
		return nil
	}

	if len(p.names) == 1 && !p.hasRoot {
		return nil
	}

	return p.svc.createPath(p.root, p.hasRoot, p.names[:len(p.names)-1])
}

// SubPath returns the relative path of the name components in [begin, end).
// It panics if the range is not valid.
func (p *Path) SubPath(begin, end int) *Path {
	if begin < 0 || end > len(p.names) || begin >= end {
		panic(fmt.Sprintf("paths: subpath [%d, %d) out of range [0, %d)", begin, end, len(p.names)))
	}

	return p.svc.CreateRelativePath(p.names[begin:end])
}

// StartsWith reports whether this path begins with other: same root under the
// service's equality mode, and other's name components are a prefix of this
// path's.
func (p *Path) StartsWith(other *Path) bool {
	if p.hasRoot != other.hasRoot {
		return false
	}

	if p.hasRoot && !p.svc.nameEqual(p.root, other.root) {
		return false
	}

	if len(other.names) > len(p.names) {
		return false
	}

	for i, n := range other.names {
		if !p.svc.nameEqual(p.names[i], n) {
			return false
		}
	}

	return true
}

// EndsWith reports whether this path ends with other. A relative other
// matches a suffix of this path's name components; an absolute other matches
// only a path equal to it.
func (p *Path) EndsWith(other *Path) bool {
	if other.hasRoot {
		return p.Equal(other)
	}

	if len(other.names) > len(p.names) {
		return false
	}

	offset := len(p.names) - len(other.names)
	for i, n := range other.names {
		if !p.svc.nameEqual(p.names[offset+i], n) {
			return false
		}
	}

	return true
}

// Resolve resolves other against this path: an absolute other is returned as
// is, an empty other returns this path, and otherwise other's components are
// appended to this path's.
func (p *Path) Resolve(other *Path) *Path {
	if other.hasRoot {
		return other
	}

	if other.isEmpty() {
		return p
	}

	if p.isEmpty() {
		return other
	}

	names := make([]Name, 0, len(p.names)+len(other.names))
	names = append(names, p.names...)
	names = append(names, other.names...)

	return p.svc.createPath(p.root, p.hasRoot, names)
}

// ResolveSibling resolves other against this path's parent. Without a parent
// it resolves against the empty path.
func (p *Path) ResolveSibling(other *Path) *Path {
	parent := p.Parent()
	if parent == nil {
		return p.svc.EmptyPath().Resolve(other)
	}

	return parent.Resolve(other)
}

// Relativize returns a relative path that, resolved against this path,
// yields other. Both paths must be absolute with equal roots, or both
// relative. The result is purely textual; no tree or symlink information is
// consulted.
func (p *Path) Relativize(other *Path) (*Path, error) {
	if p.hasRoot != other.hasRoot {
		return nil, fmt.Errorf("%w: %q and %q", ErrDifferentRoots, p, other)
	}

	if p.hasRoot && !p.svc.nameEqual(p.root, other.root) {
		return nil, fmt.Errorf("%w: %q and %q", ErrDifferentRoots, p, other)
	}

	from := p.effectiveNames()
	to := other.effectiveNames()

	common := 0
	for common < len(from) && common < len(to) && p.svc.nameEqual(from[common], to[common]) {
		common++
	}

	names := make([]Name, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		names = append(names, Parent)
	}

	names = append(names, to[common:]...)

	return p.svc.CreateRelativePath(names), nil
}

// NormalizeDots returns the path with "." components removed and ".."
// components collapsed against their preceding name, purely textually. A
// leading ".." on a relative path is kept; on an absolute path it is dropped,
// since the root is its own parent.
func (p *Path) NormalizeDots() *Path {
	names := make([]Name, 0, len(p.names))

	for _, n := range p.effectiveNames() {
		switch n {
		case Self:
		case Parent:
			if len(names) > 0 && names[len(names)-1] != Parent {
				names = names[:len(names)-1]
			} else if !p.hasRoot {
				names = append(names, n)
			}
		default:
			names = append(names, n)
		}
	}

	return p.svc.createPath(p.root, p.hasRoot, names)
}

// Equal reports whether the two paths are equal under the owning service's
// configured equality mode.
func (p *Path) Equal(other *Path) bool {
	return other != nil && p.svc.Compare(p, other) == 0
}

// Hash returns the path's hash under the owning service's configured
// equality mode. Paths that are Equal hash identically.
func (p *Path) Hash() uint64 {
	return p.svc.Hash(p)
}

// Compare orders this path against other under the owning service's
// configured equality mode, returning -1, 0, or 1.
func (p *Path) Compare(other *Path) int {
	return p.svc.Compare(p, other)
}

// String renders the path as text using the service's path syntax and each
// component's display form.
func (p *Path) String() string {
	return p.svc.Render(p)
}

// FileSystem returns the file system that owns this path's service, or nil
// if the service has not been bound yet.
func (p *Path) FileSystem() any {
	return p.svc.FileSystem()
}

// isEmpty reports whether p is the empty-path sentinel.
func (p *Path) isEmpty() bool {
	return !p.hasRoot && len(p.names) == 1 && p.names[0] == (Name{})
}

// effectiveNames returns the name components, treating the empty-path
// sentinel as having none.
func (p *Path) effectiveNames() []Name {
	if p.isEmpty() {
		return nil
	}

	return p.names
}
