package domain

import "errors"

// Domain errors represent option and persistence failures.
// Adapters wrap these with context; callers classify with errors.Is.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateKey indicates two descriptors share a serialized name.
	ErrDuplicateKey = errors.New("duplicate option key")

	// ErrUnknownOption indicates no descriptor matches the requested name.
	ErrUnknownOption = errors.New("unknown option")

	// ErrInvalidValue indicates a value cannot be applied to an option.
	ErrInvalidValue = errors.New("invalid option value")

	// Persistence Errors.

	// ErrFileAccess indicates the config file is missing or unreadable.
	// Load keeps the current values.
	ErrFileAccess = errors.New("config file not accessible")

	// ErrParse indicates the config file is not a well-formed flat object.
	// The whole load is abandoned.
	ErrParse = errors.New("config file malformed")

	// ErrFieldAccess indicates a stored value does not fit its descriptor.
	ErrFieldAccess = errors.New("option value not accessible")

	// ErrWrite indicates the config file could not be written.
	ErrWrite = errors.New("config file not written")

	// ErrUnsupportedFormat indicates no codec exists for a file extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
