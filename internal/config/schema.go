package config

// Config is the root configuration structure
type Config struct {
	Version        int          `yaml:"version"`
	Seed           *uint64      `yaml:"seed,omitempty"` // nil = nondeterministic sampling
	CheckUnpacking bool         `yaml:"check_unpacking"`
	Output         OutputFormat `yaml:"output"`
	LogLevel       LogLevel     `yaml:"log_level"`
}
