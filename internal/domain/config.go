package domain

// Config represents the configuration loaded from collections.yaml.
type Config struct {
	Output  OutputConfig
	Roster  RosterConfig
	Logging LoggingConfig
}

type OutputConfig struct {
	Format string
}

type RosterConfig struct {
	HaltOnError bool
}

type LoggingConfig struct {
	Debug bool
}

// DefaultConfig provides sane defaults if collections.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Format: "pretty"},
		Roster: RosterConfig{HaltOnError: false},
	}
}
