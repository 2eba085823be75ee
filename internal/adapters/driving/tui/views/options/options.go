// Package options provides the option editor view for the TUI.
package options

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/modmenu/internal/core/domain"
	"github.com/custodia-labs/modmenu/internal/core/ports/driving"
)

// Mode tracks whether the view is browsing or taking text input.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeAdd
	ModeRemove
)

var errNoService = errors.New("option service not available")

// View lists every option and edits the selected one.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	options     driving.OptionService
	persistence driving.ConfigPersistence

	values []domain.OptionValue
	err    error
	dirty  bool

	selected int
	mode     Mode
	input    *input.ValueInput
	showHelp bool

	width  int
	height int
	ready  bool
}

// NewView creates a new option view. persistence may be nil, which
// disables reloading.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	options driving.OptionService,
	persistence driving.ConfigPersistence,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		options:     options,
		persistence: persistence,
		input:       input.NewValueInput(s),
	}
}

// Init loads the current values.
func (v *View) Init() tea.Cmd {
	return v.loadOptions()
}

func (v *View) loadOptions() tea.Cmd {
	return func() tea.Msg {
		if v.options == nil {
			return messages.OptionsLoaded{Err: errNoService}
		}
		return messages.OptionsLoaded{Values: v.options.Values()}
	}
}

// Update handles messages for the option view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.OptionsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.values = msg.Values
		if v.selected >= len(v.values) {
			v.selected = max(len(v.values)-1, 0)
		}
		return v, nil

	case messages.OptionChanged:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.dirty = true
		return v, v.loadOptions()

	case messages.OptionsSaved:
		v.err = msg.Err
		if msg.Err == nil {
			v.dirty = false
		}
		return v, nil

	case messages.OptionsReloaded:
		v.err = msg.Err
		if msg.Err == nil {
			v.dirty = false
		}
		return v, v.loadOptions()

	case tea.KeyMsg:
		if v.mode != ModeBrowse {
			return v.handleInputKeys(msg)
		}
		return v.handleBrowseKeys(msg)
	}

	return v, nil
}

func (v *View) handleBrowseKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Quit):
		return v, tea.Quit
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.values)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Help):
		v.showHelp = !v.showHelp
	case keymap.Matches(k, v.keymap.Save):
		return v, v.commit()
	case keymap.Matches(k, v.keymap.Reload):
		return v, v.reload()
	case keymap.Matches(k, v.keymap.Toggle):
		return v.activate()
	case keymap.Matches(k, v.keymap.Add):
		return v.startInput(ModeAdd)
	case keymap.Matches(k, v.keymap.Remove):
		return v.startInput(ModeRemove)
	case keymap.Matches(k, v.keymap.Reset):
		if cur, ok := v.current(); ok {
			name := cur.Descriptor.Name()
			return v, v.edit(name, func() error { return v.options.Reset(name) })
		}
	}
	return v, nil
}

func (v *View) handleInputKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Cancel):
		v.stopInput()
		return v, nil
	case keymap.Matches(k, v.keymap.Confirm):
		value := strings.TrimSpace(v.input.Value())
		mode := v.mode
		v.stopInput()
		cur, ok := v.current()
		if !ok || value == "" {
			return v, nil
		}
		name := cur.Descriptor.Name()
		if mode == ModeRemove {
			return v, v.edit(name, func() error { return v.options.RemoveFromSet(name, value) })
		}
		return v, v.edit(name, func() error { return v.options.AddToSet(name, value) })
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// activate toggles booleans, cycles enums and opens input for sets.
func (v *View) activate() (*View, tea.Cmd) {
	cur, ok := v.current()
	if !ok {
		return v, nil
	}
	name := cur.Descriptor.Name()

	switch cur.Descriptor.Kind() {
	case domain.OptionKindBoolean:
		return v, v.edit(name, func() error { return v.options.Toggle(name) })
	case domain.OptionKindEnum:
		return v, v.edit(name, func() error { return v.options.Cycle(name) })
	case domain.OptionKindStringSet:
		return v.startInput(ModeAdd)
	}
	return v, nil
}

func (v *View) startInput(mode Mode) (*View, tea.Cmd) {
	cur, ok := v.current()
	if !ok || cur.Descriptor.Kind() != domain.OptionKindStringSet {
		return v, nil
	}

	v.mode = mode
	prompt := "Add to " + cur.Descriptor.Name()
	if mode == ModeRemove {
		prompt = "Remove from " + cur.Descriptor.Name()
	}
	return v, v.input.Start(prompt)
}

func (v *View) stopInput() {
	v.mode = ModeBrowse
	v.input.Stop()
}

// Commands that touch the services.

func (v *View) edit(name string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		if v.options == nil {
			return messages.OptionChanged{Name: name, Err: errNoService}
		}
		return messages.OptionChanged{Name: name, Err: fn()}
	}
}

func (v *View) commit() tea.Cmd {
	return func() tea.Msg {
		if v.options == nil {
			return messages.OptionsSaved{Err: errNoService}
		}
		path := ""
		if v.persistence != nil {
			path = v.persistence.Path()
		}
		return messages.OptionsSaved{Path: path, Err: v.options.Commit()}
	}
}

func (v *View) reload() tea.Cmd {
	return func() tea.Msg {
		if v.persistence == nil {
			return messages.OptionsReloaded{Err: fmt.Errorf("reload: %w", errNoService)}
		}
		v.persistence.Load()
		return messages.OptionsReloaded{Err: v.persistence.LastError()}
	}
}

func (v *View) current() (domain.OptionValue, bool) {
	if v.selected < 0 || v.selected >= len(v.values) {
		return domain.OptionValue{}, false
	}
	return v.values[v.selected], true
}

// View renders the option list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Mod Menu Options"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.values == nil {
		b.WriteString(v.styles.Muted.Render("Loading options..."))
		return b.String()
	}

	width := 0
	for _, val := range v.values {
		width = max(width, len(val.Descriptor.Name()))
	}

	for i, val := range v.values {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		name := fmt.Sprintf("%s%-*s", indicator, width, val.Descriptor.Name())
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(name))
		} else {
			b.WriteString(v.styles.Normal.Render(name))
		}
		b.WriteString("  ")
		b.WriteString(v.styles.Kind.Render(fmt.Sprintf("%-10s", val.Descriptor.Kind())))
		b.WriteString(v.styles.Value(val.IsDefault()).Render(renderValue(val)))
		b.WriteString("\n")
	}

	if v.mode != ModeBrowse {
		b.WriteString("\n")
		b.WriteString(v.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func renderValue(val domain.OptionValue) string {
	switch val.Descriptor.Kind() {
	case domain.OptionKindStringSet:
		if len(val.Set) == 0 {
			return "(none)"
		}
		return strings.Join(val.Set.Sorted(), ", ")
	case domain.OptionKindEnum:
		return val.String() + " (" + domain.DescribeEnum(val.Descriptor.EnumType(), val.Enum) + ")"
	default:
		return val.String()
	}
}

func (v *View) renderHelp() string {
	if v.mode != ModeBrowse {
		return v.styles.Help.Render("[enter] confirm  [esc] cancel")
	}
	if !v.showHelp {
		return v.styles.Help.Render("[j/k] navigate  [enter] change  [s] save  [?] more  [q] quit")
	}

	groups := v.keymap.FullHelp()
	lines := make([]string, 0, len(groups))
	for _, group := range groups {
		parts := make([]string, 0, len(group))
		for _, binding := range group {
			h := binding.Help()
			parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	return v.styles.Help.Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Values returns the values currently displayed.
func (v *View) Values() []domain.OptionValue {
	return v.values
}

// Selected returns the index of the highlighted option.
func (v *View) Selected() int {
	return v.selected
}

// Mode returns the current input mode.
func (v *View) Mode() Mode {
	return v.mode
}

// Err returns the last error shown by the view.
func (v *View) Err() error {
	return v.err
}

// Dirty reports whether there are edits not yet saved.
func (v *View) Dirty() bool {
	return v.dirty
}

// Modified returns how many options differ from their defaults.
func (v *View) Modified() int {
	n := 0
	for _, val := range v.values {
		if !val.IsDefault() {
			n++
		}
	}
	return n
}
