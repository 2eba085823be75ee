package driven

// ConfigFile reads and writes the flat option document on disk.
//
// Documents map serialized option names to bool, string or []string values on
// write. On read, values keep whatever shape the codec produced (bool, string,
// []any, float64, ...); callers must type-check them.
type ConfigFile interface {
	// Exists reports whether the file is present.
	Exists() bool

	// Read decodes the file. Errors wrap domain.ErrFileAccess when the
	// file cannot be opened and domain.ErrParse when it is not a flat object.
	Read() (map[string]any, error)

	// Write replaces the file contents with doc. Errors wrap domain.ErrWrite.
	Write(doc map[string]any) error

	// Path returns the file path.
	Path() string
}
