package prompt

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-rm/internal/tui"
	"github.com/jakoblorz/go-rm/internal/tui/components"
)

// TUIConfirmer asks with an interactive yes/no selector
type TUIConfirmer struct {
	in     io.Reader
	out    io.Writer
	styles tui.Styles
	opts   []tea.ProgramOption
}

// NewTUIConfirmer creates a TUIConfirmer. Extra program options are appended
// after the input/output options.
func NewTUIConfirmer(in io.Reader, out io.Writer, styles tui.Styles, opts ...tea.ProgramOption) *TUIConfirmer {
	return &TUIConfirmer{
		in:     in,
		out:    out,
		styles: styles,
		opts:   opts,
	}
}

func (c *TUIConfirmer) Confirm(path string) (bool, error) {
	opts := append([]tea.ProgramOption{tea.WithInput(c.in), tea.WithOutput(c.out)}, c.opts...)
	p := tea.NewProgram(components.NewConfirm(path, c.styles), opts...)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirmation: %w", err)
	}

	m, ok := final.(components.ConfirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected confirmation model %T", final)
	}
	return m.IsDone() && m.IsConfirmed(), nil
}
