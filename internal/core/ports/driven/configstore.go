package driven

// ConfigStore persists application configuration as key-value pairs.
// Keys use dot notation (e.g., "model.topics").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when unset.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when unset.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when unset.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value, or nil when unset.
	GetStringSlice(key string) []string

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load reads configuration from the backing file.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
