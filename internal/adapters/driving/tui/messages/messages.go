// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/modmenu/internal/core/domain"
)

// OptionsLoaded carries the current option values.
type OptionsLoaded struct {
	Values []domain.OptionValue
	Err    error
}

// OptionChanged signals an option was edited in the store.
type OptionChanged struct {
	Name string
	Err  error
}

// OptionsSaved signals the options were written to the config file.
type OptionsSaved struct {
	Path string
	Err  error
}

// OptionsReloaded signals the config file was read back into the store.
type OptionsReloaded struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
