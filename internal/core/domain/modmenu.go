package domain

// SortMode controls the order of the mod list.
type SortMode string

// Available sort modes.
const (
	// SortModeAlphabetical lists mods A to Z.
	SortModeAlphabetical SortMode = "ALPHABETICAL"

	// SortModeReverseAlphabetical lists mods Z to A.
	SortModeReverseAlphabetical SortMode = "REVERSE_ALPHABETICAL"
)

// String returns the string representation.
func (m SortMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m SortMode) Description() string {
	switch m {
	case SortModeAlphabetical:
		return "Alphabetical (A-Z)"
	case SortModeReverseAlphabetical:
		return "Reverse alphabetical (Z-A)"
	default:
		return unknownDescription
	}
}

// ModsButtonStyle controls how the mods button is drawn on the title screen.
type ModsButtonStyle string

// Available button styles.
const (
	// ModsButtonStyleClassic is a full-width button below the realms button.
	ModsButtonStyleClassic ModsButtonStyle = "CLASSIC"

	// ModsButtonStyleShrink shares a row with the realms button.
	ModsButtonStyleShrink ModsButtonStyle = "SHRINK"

	// ModsButtonStyleIcon is a small icon button.
	ModsButtonStyleIcon ModsButtonStyle = "ICON"
)

// String returns the string representation.
func (s ModsButtonStyle) String() string {
	return string(s)
}

// Description returns a human-readable description of the style.
func (s ModsButtonStyle) Description() string {
	switch s {
	case ModsButtonStyleClassic:
		return "Classic (own row)"
	case ModsButtonStyleShrink:
		return "Shrink (shares row with Realms)"
	case ModsButtonStyleIcon:
		return "Icon only"
	default:
		return unknownDescription
	}
}

const unknownDescription = "Unknown"

// DescribeEnum returns the display text for a constant of one of the
// mod menu enum tables.
func DescribeEnum(t *EnumType, constant string) string {
	switch t {
	case SortModeEnum:
		return SortMode(constant).Description()
	case ModsButtonStyleEnum:
		return ModsButtonStyle(constant).Description()
	default:
		return unknownDescription
	}
}

// Enum tables for the mod menu options.
var (
	SortModeEnum = MustEnumType("SortMode",
		string(SortModeAlphabetical),
		string(SortModeReverseAlphabetical),
	)

	ModsButtonStyleEnum = MustEnumType("ModsButtonStyle",
		string(ModsButtonStyleClassic),
		string(ModsButtonStyleShrink),
		string(ModsButtonStyleIcon),
	)
)

// Mod menu option descriptors.
var (
	OptionSortMode          = EnumOption("SORT_MODE", SortModeEnum, string(SortModeAlphabetical))
	OptionShowModCount      = BooleanOption("SHOW_MOD_COUNT", true)
	OptionCountLibraries    = BooleanOption("COUNT_LIBRARIES", true)
	OptionCountChildren     = BooleanOption("COUNT_CHILDREN", true)
	OptionCountHiddenMods   = BooleanOption("COUNT_HIDDEN_MODS", true)
	OptionCompactList       = BooleanOption("COMPACT_LIST", false)
	OptionShowLibraries     = BooleanOption("SHOW_LIBRARIES", false)
	OptionHideConfigButtons = BooleanOption("HIDE_CONFIG_BUTTONS", false)
	OptionModsButtonStyle   = EnumOption("MODS_BUTTON_STYLE", ModsButtonStyleEnum, string(ModsButtonStyleClassic))
	OptionHiddenMods        = StringSetOption("HIDDEN_MODS")
)

// ModMenuOptions returns the persisted mod menu options in file order.
func ModMenuOptions() *DescriptorList {
	l, err := NewDescriptorList(
		OptionShowModCount,
		OptionSortMode,
		OptionCountLibraries,
		OptionCountChildren,
		OptionCountHiddenMods,
		OptionCompactList,
		OptionShowLibraries,
		OptionHideConfigButtons,
		OptionModsButtonStyle,
		OptionHiddenMods,
	)
	if err != nil {
		panic(err)
	}
	return l
}
