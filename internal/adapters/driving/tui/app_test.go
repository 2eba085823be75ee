package tui

import (
	"context"
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/modmenu/internal/adapters/driven/config/file"
	"github.com/custodia-labs/modmenu/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/views/options"
	"github.com/custodia-labs/modmenu/internal/core/domain"
	"github.com/custodia-labs/modmenu/internal/core/services"
)

type testEnv struct {
	app   *App
	store *memory.OptionStore
	file  *file.ConfigFile
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	f, err := file.NewConfigFile(t.TempDir(), "modmenu", file.FormatJSON)
	require.NoError(t, err)
	store := memory.NewOptionStore()
	persistence := services.NewConfigPersistence(domain.ModMenuOptions(), store, f, nil)
	persistence.Initialize()
	require.NoError(t, persistence.LastError())

	app, err := NewApp(NewPorts(services.NewOptionService(domain.ModMenuOptions(), store, persistence), persistence))
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	return &testEnv{app: app, store: store, file: f}
}

// run feeds msg to the app and drains the resulting commands. Commands
// returned while text input is open only drive the cursor blink and are
// skipped.
func (e *testEnv) run(msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		_, cmd := e.app.Update(next)
		if cmd == nil || e.app.optionsView.Mode() != options.ModeBrowse {
			continue
		}
		out := cmd()
		if out == nil {
			continue
		}
		if _, quit := out.(tea.QuitMsg); quit {
			continue
		}
		queue = append(queue, out)
	}
}

func (e *testEnv) load() {
	e.run(e.app.optionsView.Init()())
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_Success(t *testing.T) {
	env := newTestEnv(t)

	assert.True(t, env.app.Ready())
	assert.NoError(t, env.app.Err())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingOptionService)
	assert.Nil(t, app)
}

func TestApp_Init(t *testing.T) {
	env := newTestEnv(t)

	assert.NotNil(t, env.app.Init())
}

func TestApp_WithContext_CancelQuits(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	assert.Equal(t, env.app, env.app.WithContext(ctx))

	cmd := env.app.waitForCancel()
	require.NotNil(t, cmd)
	cancel()
	msg := cmd()

	assert.Equal(t, messages.Quit{}, msg)
	_, quit := env.app.Update(msg)
	require.NotNil(t, quit)
	assert.Equal(t, tea.Quit(), quit())
}

func TestApp_View_BeforeReady(t *testing.T) {
	app, err := NewApp(NewPorts(services.NewOptionService(domain.ModMenuOptions(), memory.NewOptionStore(), nil), nil))
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_WindowSize(t *testing.T) {
	env := newTestEnv(t)

	env.app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, env.app.Status().Width())
}

func TestApp_CtrlCQuits(t *testing.T) {
	env := newTestEnv(t)

	_, cmd := env.app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ToggleAndSave(t *testing.T) {
	env := newTestEnv(t)
	env.load()

	env.run(keyMsg("enter"))
	assert.False(t, env.store.GetBoolean("SHOW_MOD_COUNT"))
	assert.Equal(t, status.StateDirty, env.app.Status().State())
	assert.Equal(t, 1, env.app.Status().Modified())

	env.run(keyMsg("s"))
	assert.Equal(t, status.StateSaved, env.app.Status().State())
	assert.Equal(t, env.file.Path(), env.app.Status().Message())

	doc, err := env.file.Read()
	require.NoError(t, err)
	assert.Equal(t, false, doc["show_mod_count"])
}

func TestApp_AddHiddenMod(t *testing.T) {
	env := newTestEnv(t)
	env.load()

	// hidden_mods is the last option
	for i := 0; i < domain.ModMenuOptions().Len(); i++ {
		env.run(keyMsg("j"))
	}
	env.run(keyMsg("a"))
	assert.Equal(t, status.StateEditing, env.app.Status().State())

	for _, r := range "examplemod" {
		env.run(keyMsg(string(r)))
	}
	env.run(keyMsg("enter"))

	assert.Equal(t, []string{"examplemod"}, env.store.GetStringSet("HIDDEN_MODS").Sorted())
	assert.Contains(t, env.app.View(), "examplemod")
}

func TestApp_ReloadPicksUpExternalEdit(t *testing.T) {
	env := newTestEnv(t)
	env.load()

	require.NoError(t, os.WriteFile(env.file.Path(), []byte(`{"compact_list": true}`), 0600))
	env.run(keyMsg("L"))

	assert.True(t, env.store.GetBoolean("COMPACT_LIST"))
	assert.Equal(t, status.StateReady, env.app.Status().State())
}

func TestApp_ErrorOccurred(t *testing.T) {
	env := newTestEnv(t)

	env.app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, env.app.Err(), "boom")
	assert.Equal(t, status.StateError, env.app.Status().State())
	assert.Contains(t, env.app.View(), "boom")
}
