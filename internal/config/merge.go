package config

// Merge merges a loaded config on top of defaults. Scalar settings present
// in the loaded config win; Ignore and Sources replace the defaults only
// when the loaded config sets them.
func Merge(defaults, loaded *Config) *Config {
	out := &Config{
		Format:  defaults.Format,
		Color:   defaults.Color,
		Quiet:   defaults.Quiet,
		Ignore:  defaults.Ignore,
		Sources: defaults.Sources,
	}

	if loaded == nil {
		return out
	}

	if loaded.Format != "" {
		out.Format = loaded.Format
	}
	if loaded.Color != nil {
		out.Color = loaded.Color
	}
	if loaded.Quiet != nil {
		out.Quiet = loaded.Quiet
	}
	if loaded.Ignore != nil {
		out.Ignore = loaded.Ignore
	}
	if loaded.Sources != nil {
		out.Sources = loaded.Sources
	}

	return out
}
