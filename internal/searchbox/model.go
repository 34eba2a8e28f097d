package searchbox

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model renders a Box as a bubbletea text input. It is a sub-component:
// the owning view forwards messages to Update and embeds View.
//
// Init is the mount hook. Each key message routed to the input counts as
// one interaction. Once the box is destroyed the model asks the program to
// quit, and Err reports why.
type Model struct {
	box   *Box
	input textinput.Model
	err   error
}

// NewModel wraps box in a focused text input.
func NewModel(box *Box, placeholder string) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	ti.Focus()
	return Model{box: box, input: ti}
}

// Init mounts the box, emitting the initial "".
func (m Model) Init() tea.Cmd {
	if err := m.box.Mount(); err != nil {
		return tea.Quit
	}
	return textinput.Blink
}

// Update feeds msg to the text input and reports key presses to the box.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		if err := m.box.Input(m.input.Value()); err != nil {
			m.err = err
			if errors.Is(err, ErrDestroyed) {
				return m, tea.Quit
			}
		}
	}
	return m, cmd
}

// Err returns the last error the box reported for an interaction.
func (m Model) Err() error {
	return m.err
}

// View renders the input line.
func (m Model) View() string {
	return m.input.View()
}

// Box returns the underlying search box.
func (m Model) Box() *Box {
	return m.box
}
