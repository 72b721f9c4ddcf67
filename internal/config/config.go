// Package config provides tool configuration loading and management.
package config

// DefaultOutputDir is the output directory used when neither flag, env, nor
// config file provide one.
const DefaultOutputDir = "./output"

// OutputConfig contains generation output settings.
type OutputConfig struct {
	// Dir is the default output directory for generated dashboards.
	// Env: DASHCRAFT_OUTPUT_DIR, Default: "./output"
	Dir string `mapstructure:"dir"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in verbose log output.
	// Default: true.
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the DashCraft CLI configuration.
// Loaded from ~/.dashcraft/config.yaml with env overrides.
type Config struct {
	// Output contains generation output settings.
	Output OutputConfig `mapstructure:"output"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// WithDefaults returns a copy of the config with defaults applied to any
// unset fields.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Output.Dir == "" {
		out.Output.Dir = DefaultOutputDir
	}
	if out.Log.Timestamps == nil {
		t := true
		out.Log.Timestamps = &t
	}
	return &out
}

// DefaultConfig returns a Config with all default values populated.
// Used by `dashcraft config init` to generate the initial config file.
func DefaultConfig() *Config {
	return (&Config{}).WithDefaults()
}

// DefaultConfigTemplate is the content written by `dashcraft config init`.
const DefaultConfigTemplate = `# DashCraft CLI configuration.
# Values here are overridden by DASHCRAFT_* environment variables and flags.

output:
  # Default output directory for generated dashboards.
  dir: ./output

log:
  # Show timestamps in verbose log output.
  timestamps: true
`
