package paths

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/memfs/pkg/pathnorm"
	"github.com/MacroPower/memfs/pkg/pathtype"
)

var (
	// ErrInvalidConfig indicates a configuration that cannot produce a
	// [Service].
	ErrInvalidConfig = errors.New("invalid path service configuration")

	// ErrUnknownType indicates a path syntax name other than "unix" or
	// "windows".
	ErrUnknownType = errors.New("unknown path type")
)

// Config is the declarative configuration of a [Service].
type Config struct {
	// Type selects the path syntax, "unix" or "windows". Empty defaults
	// to "unix".
	Type string `yaml:"type"`

	// Display lists the normalization steps applied to raw input to
	// produce display forms, in order.
	Display []string `yaml:"display"`

	// Canonical lists the normalization steps applied to display forms to
	// produce canonical forms, in order.
	Canonical []string `yaml:"canonical"`

	// CanonicalEquality selects canonical forms for hashing and
	// comparison instead of display forms.
	CanonicalEquality bool `yaml:"canonicalEquality"`
}

// UnmarshalConfig parses a YAML [Config] document.
func UnmarshalConfig(data []byte) (Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return c, nil
}

// Validate checks the configuration, accumulating all problems.
func (c Config) Validate() error {
	var merr *multierror.Error

	if _, err := c.pathType(); err != nil {
		merr = multierror.Append(merr, err)
	}

	if _, err := pathnorm.ParsePipeline(c.Display); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("display: %w", err))
	}

	if _, err := pathnorm.ParsePipeline(c.Canonical); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("canonical: %w", err))
	}

	return merr.ErrorOrNil()
}

func (c Config) pathType() (pathtype.Type, error) {
	switch c.Type {
	case "", "unix":
		return pathtype.Unix(), nil
	case "windows":
		return pathtype.Windows(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
	}
}

// FromConfig builds a [Service] from a validated configuration.
func FromConfig(c Config) (*Service, error) {
	if err := c.Validate(); err != nil {
		slog.Error("rejected path service configuration", "err", err)

		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	typ, _ := c.pathType()
	display, _ := pathnorm.ParsePipeline(c.Display)
	canonical, _ := pathnorm.ParsePipeline(c.Canonical)

	return NewService(typ, display, canonical, c.CanonicalEquality), nil
}
