package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-rm/internal/tui"
)

// Choice positions of the cursor
const (
	choiceYes = iota
	choiceNo
)

// ConfirmModel asks whether a single path may be deleted.
// The cursor starts on "No" so a stray enter never deletes anything.
type ConfirmModel struct {
	path      string
	styles    tui.Styles
	cursor    int
	confirmed bool
	done      bool
}

// NewConfirm creates a new confirmation component for path
func NewConfirm(path string, styles tui.Styles) ConfirmModel {
	return ConfirmModel{
		path:   path,
		styles: styles,
		cursor: choiceNo,
	}
}

// Init initializes the component
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "h":
		m.cursor = choiceYes
	case "right", "l":
		m.cursor = choiceNo
	case "tab":
		m.cursor = 1 - m.cursor
	case "enter", " ":
		return m.finish(m.cursor == choiceYes)
	case "y", "Y":
		return m.finish(true)
	case "n", "N", "ctrl+c", "esc", "ctrl+d":
		return m.finish(false)
	}
	return m, nil
}

func (m ConfirmModel) finish(confirmed bool) (tea.Model, tea.Cmd) {
	m.confirmed = confirmed
	m.done = true
	return m, tea.Quit
}

// View renders the component
func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	yes, no := "  Yes", "  No"
	if m.cursor == choiceYes {
		yes = m.styles.Selected.Render("> Yes")
	} else {
		no = m.styles.Selected.Render("> No")
	}

	return fmt.Sprintf("%s\n\n%s  %s\n\n%s\n",
		m.styles.Prompt.Render(fmt.Sprintf("rm: Delete '%s'?", m.path)),
		yes, no,
		m.styles.Help.Render("←→ navigate • enter confirm • y/n quick select"))
}

// IsConfirmed returns whether the user confirmed
func (m ConfirmModel) IsConfirmed() bool {
	return m.confirmed
}

// IsDone returns whether the user finished
func (m ConfirmModel) IsDone() bool {
	return m.done
}
