package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingOptionService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingOptionService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingOptionService.Error(), "option service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
