package config

import "log/slog"

// OutputFormat selects how command results are printed
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutput converts a string to OutputFormat, defaulting to OutputText
func ParseOutput(s string) OutputFormat {
	switch s {
	case "text":
		return OutputText
	case "json":
		return OutputJSON
	case "yaml", "yml":
		return OutputYAML
	default:
		return OutputText
	}
}

// LogLevel is the minimum level written by the logger
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ParseLogLevel converts a string to LogLevel, defaulting to LogLevelWarn
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelWarn
	}
}

// Level returns the slog level for comparison
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
