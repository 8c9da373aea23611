package driven

// ConfigStore provides persistent key-value configuration storage.
// Keys use dot notation for nesting (e.g. "llm.model").
type ConfigStore interface {
	// Get retrieves a value by key. Returns false if not found.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if not found.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if not found.
	GetInt(key string) int

	// GetFloat retrieves a float value, or 0 if not found.
	GetFloat(key string) float64

	// GetBool retrieves a boolean value, or false if not found.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load reads the configuration from the backing store.
	Load() error
}
