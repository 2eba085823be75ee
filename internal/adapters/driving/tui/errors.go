package tui

import "errors"

// ErrMissingOptionService is returned when the option service is not provided.
var ErrMissingOptionService = errors.New("tui: option service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
