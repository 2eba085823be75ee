package driving

// ConfigPersistence moves option values between the option store and the
// config file. Failures are logged and never returned from the operations
// themselves; LastError reports the most recent one.
type ConfigPersistence interface {
	// Initialize creates the file from current values if it is missing,
	// otherwise loads it. Call once at startup.
	Initialize()

	// Load reads the file into the option store.
	Load()

	// Save writes the option store to the file.
	Save()

	// LastError returns the failure from the most recent operation, or nil.
	LastError() error

	// Path returns the config file path.
	Path() string
}
