package domain

import (
	"strconv"
	"strings"
)

// OptionValue pairs a descriptor with its current value.
// Only the field matching the descriptor's kind is meaningful.
type OptionValue struct {
	Descriptor OptionDescriptor
	Bool       bool
	Enum       string
	Set        StringSet
}

// String renders the value the way it is written to disk.
func (v OptionValue) String() string {
	switch v.Descriptor.Kind() {
	case OptionKindBoolean:
		return strconv.FormatBool(v.Bool)
	case OptionKindEnum:
		return strings.ToLower(v.Enum)
	case OptionKindStringSet:
		return strings.Join(v.Set.Sorted(), ",")
	default:
		return ""
	}
}

// IsDefault reports whether the value equals the descriptor's default.
func (v OptionValue) IsDefault() bool {
	switch v.Descriptor.Kind() {
	case OptionKindBoolean:
		return v.Bool == v.Descriptor.DefaultBool()
	case OptionKindEnum:
		return v.Enum == v.Descriptor.DefaultEnum()
	case OptionKindStringSet:
		return v.Set.Equal(v.Descriptor.DefaultSet())
	default:
		return false
	}
}
