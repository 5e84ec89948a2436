package plan

// Config holds naming configuration for synthesis.
type Config struct {
	// BuilderSuffix is appended to the record name to name the builder.
	BuilderSuffix string
	// ConstructorPrefix is prepended to the builder name to name its constructor.
	ConstructorPrefix string
	// BuildMethod names the terminal build operation.
	BuildMethod string
}

// DefaultConfig returns the default synthesis configuration.
func DefaultConfig() Config {
	return Config{
		BuilderSuffix:     "Builder",
		ConstructorPrefix: "New",
		BuildMethod:       "Build",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()

	if c.BuilderSuffix == "" {
		c.BuilderSuffix = d.BuilderSuffix
	}

	if c.ConstructorPrefix == "" {
		c.ConstructorPrefix = d.ConstructorPrefix
	}

	if c.BuildMethod == "" {
		c.BuildMethod = d.BuildMethod
	}

	return c
}
