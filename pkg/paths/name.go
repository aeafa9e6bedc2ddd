package paths

// Name is one path component: a display string used for rendering, paired
// with a canonical string derived from it by the owning service's canonical
// pipeline. Name is a dumb value pair with no intrinsic equality; whether two
// Names denote the same underlying text is decided by the owning [Service]
// and its configured equality mode.
type Name struct {
	// Display is the rendered form of the component.
	Display string

	// Canonical is the normalized form used for equality when the owning
	// service is configured for canonical-form comparison. It is always
	// derivable from Display via the service's canonical pipeline;
	// callers constructing Names directly must maintain that invariant.
	Canonical string
}

// Self and Parent are the dot name components. They bypass normalization so
// that dot components behave identically in every configuration.
var (
	Self   = Name{Display: ".", Canonical: "."}
	Parent = Name{Display: "..", Canonical: ".."}
)

// SimpleName returns a Name whose display and canonical forms are both v.
func SimpleName(v string) Name {
	switch v {
	case ".":
		return Self
	case "..":
		return Parent
	default:
		return Name{Display: v, Canonical: v}
	}
}

// String returns the display form.
func (n Name) String() string {
	return n.Display
}
