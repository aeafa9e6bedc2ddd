package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/memfs/pkg/pathmatch"
	"github.com/MacroPower/memfs/pkg/pathnorm"
	"github.com/MacroPower/memfs/pkg/paths"
	"github.com/MacroPower/memfs/pkg/pathtype"
)

func unixService(t *testing.T) *paths.Service {
	t.Helper()

	return paths.NewService(pathtype.Unix(), pathnorm.Pipeline{}, pathnorm.Pipeline{}, false)
}

func windowsService(t *testing.T) *paths.Service {
	t.Helper()

	return paths.NewService(pathtype.Windows(), pathnorm.Pipeline{}, pathnorm.Pipeline{}, false)
}

func canonicalEqualityService(t *testing.T) *paths.Service {
	t.Helper()

	return paths.NewService(pathtype.Unix(), pathnorm.Pipeline{}, pathnorm.Pipeline{}, true)
}

func TestService_Separator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", unixService(t).Separator())
	assert.Equal(t, `\`, windowsService(t).Separator())
}

func TestService_PathCreation(t *testing.T) {
	t.Parallel()

	svc := unixService(t)

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		p := svc.EmptyPath()
		assert.False(t, p.IsAbsolute())
		require.Equal(t, 1, p.NameCount())
		assert.Equal(t, paths.Name{}, p.NameAt(0))
	})

	t.Run("root", func(t *testing.T) {
		t.Parallel()

		p := svc.CreateRoot(svc.Name("/"))
		assert.True(t, p.IsAbsolute())

		root, ok := p.Root()
		require.True(t, ok)
		assert.Equal(t, "/", root.Display)
		assert.Equal(t, 0, p.NameCount())
	})

	t.Run("file name", func(t *testing.T) {
		t.Parallel()

		p := svc.CreateFileName(svc.Name("foo"))
		assert.False(t, p.IsAbsolute())
		require.Equal(t, 1, p.NameCount())
		assert.Equal(t, "foo", p.NameAt(0).Display)
	})

	t.Run("relative path", func(t *testing.T) {
		t.Parallel()

		p := svc.CreateRelativePath(svc.Names([]string{"foo", "bar"}))
		assert.False(t, p.IsAbsolute())
		require.Equal(t, 2, p.NameCount())
		assert.Equal(t, "foo", p.NameAt(0).Display)
		assert.Equal(t, "bar", p.NameAt(1).Display)
	})

	t.Run("absolute path", func(t *testing.T) {
		t.Parallel()

		root := svc.Name("/")
		p := svc.CreatePath(&root, svc.Names([]string{"foo", "bar"}))
		assert.True(t, p.IsAbsolute())

		got, ok := p.Root()
		require.True(t, ok)
		assert.Equal(t, "/", got.Display)
		require.Equal(t, 2, p.NameCount())
		assert.Equal(t, "foo", p.NameAt(0).Display)
		assert.Equal(t, "bar", p.NameAt(1).Display)
	})
}

func TestService_PathCreation_EmptyPath(t *testing.T) {
	t.Parallel()

	svc := unixService(t)

	// No root and no names normalizes to the empty path with a single
	// empty-string name, never zero components.
	for name, p := range map[string]*paths.Path{
		"create path":   svc.CreatePath(nil, nil),
		"relative path": svc.CreateRelativePath(nil),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.False(t, p.IsAbsolute())
			require.Equal(t, 1, p.NameCount())
			assert.Equal(t, paths.Name{}, p.NameAt(0))
			assert.True(t, p.Equal(svc.EmptyPath()))
		})
	}
}

func TestService_ParsePath(t *testing.T) {
	t.Parallel()

	svc := unixService(t)

	t.Run("ignores empty strings", func(t *testing.T) {
		t.Parallel()

		// If the empty string were joined rather than ignored, the
		// result would be "/foo".
		p, err := svc.ParsePath("", "foo")
		require.NoError(t, err)

		assert.False(t, p.IsAbsolute())
		require.Equal(t, 1, p.NameCount())
		assert.Equal(t, "foo", p.NameAt(0).Display)
	})

	t.Run("absolute", func(t *testing.T) {
		t.Parallel()

		p, err := svc.ParsePath("/foo/bar")
		require.NoError(t, err)

		assert.True(t, p.IsAbsolute())
		assert.Equal(t, "/foo/bar", p.String())
	})

	t.Run("no input yields empty path", func(t *testing.T) {
		t.Parallel()

		p, err := svc.ParsePath()
		require.NoError(t, err)
		assert.True(t, p.Equal(svc.EmptyPath()))
	})

	t.Run("malformed propagates", func(t *testing.T) {
		t.Parallel()

		_, err := windowsService(t).ParsePath("C:foo")
		require.ErrorIs(t, err, pathtype.ErrMalformedPath)
	})
}

func TestService_ParseRenderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"foo/bar":    "foo/bar",
		"/foo/bar":   "/foo/bar",
		"foo//bar/":  "foo/bar",
		"/foo//bar/": "/foo/bar",
		"":           "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			p, err := unixService(t).ParsePath(in)
			require.NoError(t, err)
			assert.Equal(t, want, p.String())
		})
	}
}

func TestService_Render(t *testing.T) {
	t.Parallel()

	svc := unixService(t)

	p := svc.CreateRelativePath(svc.Names([]string{"foo", "bar"}))
	assert.Equal(t, "foo/bar", svc.Render(p))

	root := svc.Name("/")
	p = svc.CreatePath(&root, svc.Names([]string{"foo"}))
	assert.Equal(t, "/foo", svc.Render(p))
}

func TestService_Hash_UsingDisplayForm(t *testing.T) {
	t.Parallel()

	svc := unixService(t)

	// Identical display forms must hash identically regardless of
	// canonical forms.
	p1 := svc.CreateRelativePath([]paths.Name{{Display: "FOO", Canonical: "foo"}})
	p2 := svc.CreateRelativePath([]paths.Name{{Display: "FOO", Canonical: "FOO"}})
	p3 := svc.CreateRelativePath([]paths.Name{{Display: "FOO", Canonical: "9874238974897189741"}})

	assert.Equal(t, svc.Hash(p1), svc.Hash(p2))
	assert.Equal(t, svc.Hash(p2), svc.Hash(p3))
}

func TestService_Hash_UsingCanonicalForm(t *testing.T) {
	t.Parallel()

	svc := canonicalEqualityService(t)

	p1 := svc.CreateRelativePath([]paths.Name{{Display: "foo", Canonical: "foo"}})
	p2 := svc.CreateRelativePath([]paths.Name{{Display: "FOO", Canonical: "foo"}})
	p3 := svc.CreateRelativePath([]paths.Name{{Display: "28937497189478912374897", Canonical: "foo"}})

	assert.Equal(t, svc.Hash(p1), svc.Hash(p2))
	assert.Equal(t, svc.Hash(p2), svc.Hash(p3))
}

func TestService_Compare_UsingDisplayForm(t *testing.T) {
	t.Parallel()

	svc := unixService(t)

	p1 := svc.CreateRelativePath([]paths.Name{{Display: "a", Canonical: "z"}})
	p2 := svc.CreateRelativePath([]paths.Name{{Display: "b", Canonical: "y"}})
	p3 := svc.CreateRelativePath([]paths.Name{{Display: "c", Canonical: "x"}})

	assert.Equal(t, -1, svc.Compare(p1, p2))
	assert.Equal(t, -1, svc.Compare(p2, p3))
}

func TestService_Compare_UsingCanonicalForm(t *testing.T) {
	t.Parallel()

	svc := paths.NewService(pathtype.Unix(), pathnorm.Pipeline{}, pathnorm.Pipeline{}, true)

	p1 := svc.CreateRelativePath([]paths.Name{{Display: "a", Canonical: "z"}})
	p2 := svc.CreateRelativePath([]paths.Name{{Display: "b", Canonical: "y"}})
	p3 := svc.CreateRelativePath([]paths.Name{{Display: "c", Canonical: "x"}})

	assert.Equal(t, 1, svc.Compare(p1, p2))
	assert.Equal(t, 1, svc.Compare(p2, p3))
}

func TestService_Compare_Structure(t *testing.T) {
	t.Parallel()

	svc := unixService(t)

	relative := svc.CreateRelativePath(svc.Names([]string{"foo"}))
	absolute := svc.CreateRoot(svc.Name("/"))

	t.Run("absent root sorts before present", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, svc.Compare(relative, absolute))
		assert.Equal(t, 1, svc.Compare(absolute, relative))
	})

	t.Run("strict prefix sorts first", func(t *testing.T) {
		t.Parallel()

		shorter := svc.CreateRelativePath(svc.Names([]string{"foo"}))
		longer := svc.CreateRelativePath(svc.Names([]string{"foo", "bar"}))

		assert.Equal(t, -1, svc.Compare(shorter, longer))
		assert.Equal(t, 1, svc.Compare(longer, shorter))
	})

	t.Run("equal paths", func(t *testing.T) {
		t.Parallel()

		a, err := svc.ParsePath("/foo/bar")
		require.NoError(t, err)
		b, err := svc.ParsePath("/foo/bar")
		require.NoError(t, err)

		assert.Equal(t, 0, svc.Compare(a, b))
		assert.Equal(t, svc.Hash(a), svc.Hash(b))
	})
}

func TestService_Normalization(t *testing.T) {
	t.Parallel()

	svc := paths.NewService(
		pathtype.Unix(),
		pathnorm.NewPipeline(pathnorm.NFC),
		pathnorm.NewPipeline(pathnorm.CaseFold),
		true,
	)

	t.Run("canonical derives from display", func(t *testing.T) {
		t.Parallel()

		n := svc.Name("FOO")
		assert.Equal(t, "FOO", n.Display)
		assert.Equal(t, "foo", n.Canonical)
	})

	t.Run("case-insensitive equality", func(t *testing.T) {
		t.Parallel()

		a, err := svc.ParsePath("/Foo/BAR")
		require.NoError(t, err)
		b, err := svc.ParsePath("/foo/bar")
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Hash(), b.Hash())

		// Display forms are preserved for rendering.
		assert.Equal(t, "/Foo/BAR", a.String())
	})

	t.Run("dot names bypass normalization", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, paths.Self, svc.Name("."))
		assert.Equal(t, paths.Parent, svc.Name(".."))
	})
}

func TestService_CreatePathMatcher(t *testing.T) {
	t.Parallel()

	svc := unixService(t)

	t.Run("glob", func(t *testing.T) {
		t.Parallel()

		m, err := svc.CreatePathMatcher("glob:foo")
		require.NoError(t, err)

		p, err := svc.ParsePath("foo")
		require.NoError(t, err)
		assert.True(t, m.Matches(p.String()))
	})

	t.Run("regex", func(t *testing.T) {
		t.Parallel()

		m, err := svc.CreatePathMatcher("regex:foo")
		require.NoError(t, err)
		assert.True(t, m.Matches("foo"))
	})

	t.Run("glob over rendered paths", func(t *testing.T) {
		t.Parallel()

		m, err := svc.CreatePathMatcher("glob:/foo/*.txt")
		require.NoError(t, err)

		p, err := svc.ParsePath("/foo/bar.txt")
		require.NoError(t, err)
		assert.True(t, m.Matches(p.String()))

		p, err = svc.ParsePath("/foo/bar/baz.txt")
		require.NoError(t, err)
		assert.False(t, m.Matches(p.String()))
	})

	t.Run("unsupported syntax", func(t *testing.T) {
		t.Parallel()

		_, err := svc.CreatePathMatcher("foo:bar")
		require.ErrorIs(t, err, pathmatch.ErrUnsupportedSyntax)
	})
}

func TestService_Bind(t *testing.T) {
	t.Parallel()

	type fakeFS struct{ name string }

	t.Run("unbound returns nil", func(t *testing.T) {
		t.Parallel()

		svc := unixService(t)
		assert.Nil(t, svc.FileSystem())
	})

	t.Run("bind once", func(t *testing.T) {
		t.Parallel()

		svc := unixService(t)
		fs := &fakeFS{name: "memfs"}
		svc.Bind(fs)

		assert.Same(t, fs, svc.FileSystem())

		p, err := svc.ParsePath("/foo")
		require.NoError(t, err)
		assert.Same(t, fs, p.FileSystem())
	})

	t.Run("second bind panics", func(t *testing.T) {
		t.Parallel()

		svc := unixService(t)
		svc.Bind(&fakeFS{})

		assert.Panics(t, func() {
			svc.Bind(&fakeFS{})
		})
	})
}
