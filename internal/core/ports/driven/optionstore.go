package driven

import "github.com/custodia-labs/modmenu/internal/core/domain"

// OptionStore is the in-memory registry of current option values, keyed by
// descriptor key. Implementations return copies of sets so callers cannot
// mutate stored state.
type OptionStore interface {
	// Has reports whether a value has been stored for key.
	Has(key string) bool

	// GetBoolean retrieves a boolean value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBoolean(key string) bool

	// SetBoolean stores a boolean value.
	SetBoolean(key string, value bool)

	// GetStringSet retrieves a string set value.
	// Returns nil if key doesn't exist or isn't a set.
	GetStringSet(key string) domain.StringSet

	// SetStringSet stores a string set value.
	SetStringSet(key string, value domain.StringSet)

	// GetEnum retrieves the constant name stored for an enum option.
	// Returns empty string if key doesn't exist or isn't an enum.
	GetEnum(key string) string

	// SetEnum stores the constant name for an enum option.
	SetEnum(key string, value string)

	// Delete removes the value for key so it reads as unset.
	Delete(key string)
}
