package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/modmenu/internal/core/domain"
)

func TestOptionsLoaded(t *testing.T) {
	t.Run("with values", func(t *testing.T) {
		msg := OptionsLoaded{Values: []domain.OptionValue{
			{Descriptor: domain.OptionCompactList, Bool: true},
		}}

		require.Len(t, msg.Values, 1)
		assert.Equal(t, "compact_list", msg.Values[0].Descriptor.Name())
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := OptionsLoaded{Err: errors.New("no service")}

		assert.Nil(t, msg.Values)
		assert.EqualError(t, msg.Err, "no service")
	})
}

func TestOptionChanged(t *testing.T) {
	msg := OptionChanged{Name: "sort_mode", Err: domain.ErrInvalidValue}

	assert.Equal(t, "sort_mode", msg.Name)
	assert.ErrorIs(t, msg.Err, domain.ErrInvalidValue)
}

func TestOptionsSaved(t *testing.T) {
	msg := OptionsSaved{Path: "/tmp/modmenu.json"}

	assert.Equal(t, "/tmp/modmenu.json", msg.Path)
	assert.NoError(t, msg.Err)
}

func TestOptionsReloaded(t *testing.T) {
	msg := OptionsReloaded{Err: domain.ErrParse}

	assert.ErrorIs(t, msg.Err, domain.ErrParse)
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}

	assert.Equal(t, err, msg.Err)
}

func TestQuit(t *testing.T) {
	var msg any = Quit{}

	_, ok := msg.(Quit)
	assert.True(t, ok)
}
