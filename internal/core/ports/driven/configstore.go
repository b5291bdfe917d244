package driven

// ConfigStore provides application configuration access.
// Backed by a TOML file in the stacks config directory.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when absent.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when absent.
	GetInt(key string) int

	// Set stores a configuration value.
	Set(key string, value any) error

	// Save persists the configuration to disk.
	Save() error
}
