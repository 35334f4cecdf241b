package config

// Default connection and logging settings.
const (
	DefaultTemporalHostPort = "localhost:7233"
	DefaultNamespace        = "default"
	DefaultTaskQueue        = "skyangle"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = LogFormatText
)

// DefaultConfig returns settings for a local Temporal development server.
func DefaultConfig() *Config {
	return &Config{
		TemporalHostPort: DefaultTemporalHostPort,
		Namespace:        DefaultNamespace,
		TaskQueue:        DefaultTaskQueue,
		LogLevel:         DefaultLogLevel,
		LogFormat:        DefaultLogFormat,
	}
}
