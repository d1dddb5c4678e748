// Package prompt asks the user whether a path may be deleted.
package prompt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jakoblorz/go-rm/internal/tui"
)

// Confirmer answers whether path may be deleted.
// A false answer with a nil error means the user declined.
type Confirmer interface {
	Confirm(path string) (bool, error)
}

// LineConfirmer reads yes/no answers line by line.
// Only the first byte of a line is examined.
type LineConfirmer struct {
	in     *bufio.Reader
	out    io.Writer
	styles tui.Styles
}

// NewLineConfirmer creates a LineConfirmer reading from in and writing prompts to out
func NewLineConfirmer(in io.Reader, out io.Writer, styles tui.Styles) *LineConfirmer {
	return &LineConfirmer{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

// Confirm loops until the answer starts with 'y' or 'n'. End of input declines.
func (c *LineConfirmer) Confirm(path string) (bool, error) {
	for {
		fmt.Fprintf(c.out, "%s\nEnter [y] for yes or [n] for no\n",
			c.styles.Prompt.Render(fmt.Sprintf("rm: Delete '%s'?", path)))

		line, err := c.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		if line == "" {
			return false, nil
		}

		switch line[0] {
		case 'y':
			return true, nil
		case 'n':
			return false, nil
		}

		fmt.Fprintln(c.out, "Invalid answer.")
		if err == io.EOF {
			return false, nil
		}
	}
}
