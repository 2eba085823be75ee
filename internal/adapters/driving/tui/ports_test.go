package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/modmenu/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/modmenu/internal/core/domain"
	"github.com/custodia-labs/modmenu/internal/core/services"
)

func TestNewPorts(t *testing.T) {
	svc := services.NewOptionService(domain.ModMenuOptions(), memory.NewOptionStore(), nil)

	ports := NewPorts(svc, nil)

	require.NotNil(t, ports)
	assert.Equal(t, svc, ports.Options)
	assert.Nil(t, ports.Persistence)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingOptions(t *testing.T) {
	ports := &Ports{}

	assert.ErrorIs(t, ports.Validate(), ErrMissingOptionService)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}
