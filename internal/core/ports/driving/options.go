package driving

import "github.com/custodia-labs/modmenu/internal/core/domain"

// OptionService gives UIs typed access to option values.
// Names accept either the declared key or the serialized name.
type OptionService interface {
	// Descriptors returns the persisted options in file order.
	Descriptors() []domain.OptionDescriptor

	// Values returns the current value of every option.
	Values() []domain.OptionValue

	// Value returns the current value of one option.
	Value(name string) (domain.OptionValue, error)

	// Set parses raw according to the option's kind and stores it.
	// Booleans accept strconv.ParseBool input, enums any casing of a
	// constant, and sets a comma-separated list.
	Set(name, raw string) error

	// Toggle flips a boolean option.
	Toggle(name string) error

	// Cycle advances an enum option to its next constant.
	Cycle(name string) error

	// AddToSet adds values to a string-set option.
	AddToSet(name string, values ...string) error

	// RemoveFromSet removes values from a string-set option.
	RemoveFromSet(name string, values ...string) error

	// Reset restores one option to its default.
	Reset(name string) error

	// ResetAll restores every option to its default.
	ResetAll()

	// Commit persists current values and reports any save failure.
	Commit() error
}
