// Package domain defines the core option types for modmenu.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - OptionDescriptor: A named slot (boolean, enum or string set) with its default
//   - EnumType: The explicit constant table behind an enum option
//   - StringSet: The value of a string-set option
//   - DescriptorList: The ordered, key-unique list of persisted options
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
