package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_NavigationBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.Down.Keys(), "down")
}

func TestDefaultKeyMap_ToggleBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Toggle.Keys()
	assert.Contains(t, keys, "enter")
	assert.Contains(t, keys, " ")
}

func TestDefaultKeyMap_EditBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Add.Keys(), "a")
	assert.Contains(t, km.Remove.Keys(), "d")
	assert.Contains(t, km.Reset.Keys(), "r")
	assert.Contains(t, km.Save.Keys(), "s")
	assert.Contains(t, km.Reload.Keys(), "L")
	assert.Contains(t, km.Cancel.Keys(), "esc")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 3)
	assert.Equal(t, km.Save, bindings[0])
	assert.Equal(t, km.Quit, bindings[2])
}

func TestInputHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []key.Binding{km.Confirm, km.Cancel}, km.InputHelp())
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)    // 3 groups
	assert.Len(t, bindings[0], 3) // Up, Down, Toggle
	assert.Len(t, bindings[1], 3) // Add, Remove, Reset
	assert.Len(t, bindings[2], 4) // Save, Reload, Help, Quit
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches(" ", km.Toggle))
	assert.True(t, Matches("x", km.Remove))
	assert.False(t, Matches("s", km.Quit))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Help", km.Help},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Toggle", km.Toggle},
		{"Add", km.Add},
		{"Remove", km.Remove},
		{"Reset", km.Reset},
		{"Save", km.Save},
		{"Reload", km.Reload},
		{"Confirm", km.Confirm},
		{"Cancel", km.Cancel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
