package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/views/options"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	optionsView *options.View
	statusBar   *status.Bar

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		optionsView: options.NewView(s, km, ports.Options, ports.Persistence),
		statusBar:   status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app. Cancelling it quits the program.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("modmenu - options"),
		a.optionsView.Init(),
		a.waitForCancel(),
	)
}

func (a *App) waitForCancel() tea.Cmd {
	ctx := a.ctx
	if ctx.Done() == nil {
		return nil
	}
	return func() tea.Msg {
		<-ctx.Done()
		return messages.Quit{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.syncStatus()
		return a, nil
	}

	a.optionsView, cmd = a.optionsView.Update(msg)
	a.syncStatus()

	// A save reports its path once; the next edit clears it.
	if saved, ok := msg.(messages.OptionsSaved); ok && saved.Err == nil {
		a.statusBar.SetState(status.StateSaved)
		a.statusBar.SetMessage(saved.Path)
	}
	return a, cmd
}

// syncStatus mirrors the view state into the status bar.
func (a *App) syncStatus() {
	a.statusBar.SetModified(a.optionsView.Modified())
	a.statusBar.SetMessage("")

	switch {
	case a.err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(a.err.Error())
	case a.optionsView.Err() != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(a.optionsView.Err().Error())
	case a.optionsView.Mode() != options.ModeBrowse:
		a.statusBar.SetState(status.StateEditing)
	case a.optionsView.Dirty():
		a.statusBar.SetState(status.StateDirty)
	default:
		a.statusBar.SetState(status.StateReady)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	body := a.optionsView.View()
	lines := strings.Count(body, "\n") + 1

	var b strings.Builder
	b.WriteString(body)
	// Pin the status bar to the bottom row.
	if pad := a.height - lines - 1; pad > 0 {
		b.WriteString(strings.Repeat("\n", pad))
	}
	b.WriteString("\n")
	b.WriteString(a.statusBar.View())
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Status returns the status bar (for testing).
func (a *App) Status() *status.Bar {
	return a.statusBar
}

// OptionsView returns the option view (for testing).
func (a *App) OptionsView() *options.View {
	return a.optionsView
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.optionsView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
