// Package dashboard provides the typed dashboard configuration model.
//
// A Dashboard is the parsed form of a user-supplied YAML configuration. It is
// read-only input to one generation run; the scaffold package never mutates it.
package dashboard

import "fmt"

// Theme defaults applied when the config omits a field.
const (
	DefaultThemeMode      = "light"
	DefaultPrimaryColor   = "#1976d2"
	DefaultSecondaryColor = "#ff4081"
)

// DefaultComponentTitle is the title used when a component declares none.
const DefaultComponentTitle = "Component"

// Dashboard is the root configuration object: the components to generate and
// an optional theme description.
type Dashboard struct {
	// Components is the ordered list of dashboard widgets to generate.
	Components []Component `yaml:"components"`

	// Theme describes styling parameters. Optional; defaults apply when absent.
	Theme *Theme `yaml:"theme,omitempty"`
}

// Component describes one dashboard widget driving one generated source stub.
type Component struct {
	// ID names the component. Used verbatim for the file name and, normalized
	// to PascalCase, for the generated symbol name. Required, unique per run.
	ID string `yaml:"id"`

	// Type is an informational widget kind (e.g. "chart", "table").
	Type string `yaml:"type,omitempty"`

	// Options holds free-form per-component options.
	Options map[string]any `yaml:"options,omitempty"`
}

// Title returns the component's title option, or DefaultComponentTitle when
// absent. Non-string option values are formatted with fmt.Sprint.
func (c Component) Title() string {
	if c.Options == nil {
		return DefaultComponentTitle
	}
	v, ok := c.Options["title"]
	if !ok || v == nil {
		return DefaultComponentTitle
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Theme holds styling parameters for the generated theme stub.
// All fields are optional with fixed defaults.
type Theme struct {
	// Mode is the palette mode ("light" or "dark"). Default "light".
	Mode string `yaml:"mode,omitempty"`

	// PrimaryColor is the primary palette color. Default "#1976d2".
	PrimaryColor string `yaml:"primaryColor,omitempty"`

	// SecondaryColor is the secondary palette color. Default "#ff4081".
	SecondaryColor string `yaml:"secondaryColor,omitempty"`
}

// WithDefaults returns the theme with documented defaults applied to any
// unset field. A nil receiver yields the all-defaults theme.
func (t *Theme) WithDefaults() Theme {
	out := Theme{}
	if t != nil {
		out = *t
	}
	if out.Mode == "" {
		out.Mode = DefaultThemeMode
	}
	if out.PrimaryColor == "" {
		out.PrimaryColor = DefaultPrimaryColor
	}
	if out.SecondaryColor == "" {
		out.SecondaryColor = DefaultSecondaryColor
	}
	return out
}
