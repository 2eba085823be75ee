package domain

import (
	"fmt"
	"sort"
	"strings"
)

// OptionKind identifies the value shape of an option.
type OptionKind int

// Available option kinds.
const (
	// OptionKindBoolean holds true or false.
	OptionKindBoolean OptionKind = iota

	// OptionKindEnum holds one constant of a fixed EnumType.
	OptionKindEnum

	// OptionKindStringSet holds an unordered set of unique strings.
	OptionKindStringSet
)

// String returns the string representation.
func (k OptionKind) String() string {
	switch k {
	case OptionKindBoolean:
		return "boolean"
	case OptionKindEnum:
		return "enum"
	case OptionKindStringSet:
		return "string_set"
	default:
		return "unknown"
	}
}

// EnumType is an explicit table of the constants an enum option may take.
// Constants keep their declared spelling; lookups ignore case.
type EnumType struct {
	name      string
	constants []string
	index     map[string]string
}

// NewEnumType creates an enum table. Constant names must be non-empty and
// unique ignoring case.
func NewEnumType(name string, constants ...string) (*EnumType, error) {
	if len(constants) == 0 {
		return nil, fmt.Errorf("%w: enum %s has no constants", ErrInvalidInput, name)
	}

	t := &EnumType{
		name:      name,
		constants: make([]string, 0, len(constants)),
		index:     make(map[string]string, len(constants)),
	}
	for _, c := range constants {
		if c == "" {
			return nil, fmt.Errorf("%w: enum %s has an empty constant", ErrInvalidInput, name)
		}
		folded := strings.ToLower(c)
		if _, dup := t.index[folded]; dup {
			return nil, fmt.Errorf("%w: enum %s declares %s twice", ErrInvalidInput, name, c)
		}
		t.index[folded] = c
		t.constants = append(t.constants, c)
	}
	return t, nil
}

// MustEnumType is like NewEnumType but panics on error.
// Intended for package-level descriptor tables.
func MustEnumType(name string, constants ...string) *EnumType {
	t, err := NewEnumType(name, constants...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the enum's type name.
func (t *EnumType) Name() string {
	return t.name
}

// Constants returns the constants in declaration order.
func (t *EnumType) Constants() []string {
	out := make([]string, len(t.constants))
	copy(out, t.constants)
	return out
}

// Lookup finds the constant matching s, ignoring case.
func (t *EnumType) Lookup(s string) (string, bool) {
	c, ok := t.index[strings.ToLower(s)]
	return c, ok
}

// Contains reports whether c is one of the declared constants, exactly as spelled.
func (t *EnumType) Contains(c string) bool {
	found, ok := t.index[strings.ToLower(c)]
	return ok && found == c
}

// SerializedName returns the on-disk spelling of constant c.
func (t *EnumType) SerializedName(c string) (string, bool) {
	if !t.Contains(c) {
		return "", false
	}
	return strings.ToLower(c), true
}

// Next returns the constant after c, wrapping around to the first.
func (t *EnumType) Next(c string) string {
	for i, v := range t.constants {
		if v == c {
			return t.constants[(i+1)%len(t.constants)]
		}
	}
	return t.constants[0]
}

// StringSet is an unordered collection of unique strings.
type StringSet map[string]struct{}

// NewStringSet creates a set from values, dropping duplicates.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is in the set.
func (s StringSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v.
func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

// Remove deletes v.
func (s StringSet) Remove(v string) {
	delete(s, v)
}

// Clone returns an independent copy. A nil set clones to an empty set.
func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Sorted returns the members in lexical order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same members.
func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// OptionDescriptor describes one configuration slot: its key, value shape and default.
// Construct with BooleanOption, EnumOption or StringSetOption.
type OptionDescriptor struct {
	key      string
	kind     OptionKind
	enumType *EnumType

	defaultBool bool
	defaultEnum string
	defaultSet  []string
}

// BooleanOption describes a true/false option.
func BooleanOption(key string, def bool) OptionDescriptor {
	return OptionDescriptor{key: key, kind: OptionKindBoolean, defaultBool: def}
}

// EnumOption describes an option holding one constant of enumType.
// The default must be one of the enum's constants.
func EnumOption(key string, enumType *EnumType, def string) OptionDescriptor {
	return OptionDescriptor{key: key, kind: OptionKindEnum, enumType: enumType, defaultEnum: def}
}

// StringSetOption describes an option holding a set of strings.
func StringSetOption(key string, def ...string) OptionDescriptor {
	return OptionDescriptor{key: key, kind: OptionKindStringSet, defaultSet: def}
}

// Key returns the declared identifier.
func (d OptionDescriptor) Key() string {
	return d.key
}

// Name returns the serialized name: the key lower-cased.
func (d OptionDescriptor) Name() string {
	return strings.ToLower(d.key)
}

// Kind returns the value shape.
func (d OptionDescriptor) Kind() OptionKind {
	return d.kind
}

// EnumType returns the constant table for enum options, nil otherwise.
func (d OptionDescriptor) EnumType() *EnumType {
	return d.enumType
}

// DefaultBool returns the default of a boolean option.
func (d OptionDescriptor) DefaultBool() bool {
	return d.defaultBool
}

// DefaultEnum returns the default constant of an enum option.
func (d OptionDescriptor) DefaultEnum() string {
	return d.defaultEnum
}

// DefaultSet returns a fresh copy of a string-set option's default.
func (d OptionDescriptor) DefaultSet() StringSet {
	return NewStringSet(d.defaultSet...)
}

// Validate checks that the descriptor is internally consistent.
func (d OptionDescriptor) Validate() error {
	if d.key == "" {
		return fmt.Errorf("%w: option key is empty", ErrInvalidInput)
	}
	switch d.kind {
	case OptionKindBoolean, OptionKindStringSet:
		return nil
	case OptionKindEnum:
		if d.enumType == nil {
			return fmt.Errorf("%w: enum option %s has no enum type", ErrInvalidInput, d.key)
		}
		if !d.enumType.Contains(d.defaultEnum) {
			return fmt.Errorf("%w: enum option %s default %q is not a constant of %s",
				ErrInvalidInput, d.key, d.defaultEnum, d.enumType.Name())
		}
		return nil
	default:
		return fmt.Errorf("%w: option %s has unknown kind %d", ErrInvalidInput, d.key, d.kind)
	}
}

// DescriptorList is an ordered, validated list of option descriptors with unique keys.
type DescriptorList struct {
	descriptors []OptionDescriptor
	byName      map[string]int
}

// NewDescriptorList validates descriptors and checks that keys are unique.
// Keys that only differ in case collide, since they share a serialized name.
func NewDescriptorList(descriptors ...OptionDescriptor) (*DescriptorList, error) {
	l := &DescriptorList{
		descriptors: make([]OptionDescriptor, 0, len(descriptors)),
		byName:      make(map[string]int, len(descriptors)),
	}
	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := l.byName[d.Name()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, d.Key())
		}
		l.byName[d.Name()] = len(l.descriptors)
		l.descriptors = append(l.descriptors, d)
	}
	return l, nil
}

// All returns the descriptors in declaration order.
func (l *DescriptorList) All() []OptionDescriptor {
	out := make([]OptionDescriptor, len(l.descriptors))
	copy(out, l.descriptors)
	return out
}

// Len returns the number of descriptors.
func (l *DescriptorList) Len() int {
	return len(l.descriptors)
}

// Lookup finds a descriptor by key or serialized name, ignoring case.
func (l *DescriptorList) Lookup(name string) (OptionDescriptor, bool) {
	i, ok := l.byName[strings.ToLower(name)]
	if !ok {
		return OptionDescriptor{}, false
	}
	return l.descriptors[i], true
}
