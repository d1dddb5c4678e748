package cli

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Environment variables read by the command
const (
	// EnvConfirm selects the confirmation UI for -i: "line" (default) or "tui"
	EnvConfirm = "RM_CONFIRM"

	// EnvNoColor disables colored output when set to any value
	EnvNoColor = "NO_COLOR"
)

// Confirmation UI modes
const (
	ConfirmLine = "line"
	ConfirmTUI  = "tui"
)

// Getenv looks up an environment variable, returning "" when unset
type Getenv func(key string) string

// Config is the environment configuration of one invocation
type Config struct {
	ConfirmMode string
	Plain       bool
}

// LoadConfig reads the configuration from getenv. Unknown confirmation modes
// fall back to line mode.
func LoadConfig(getenv Getenv) Config {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Config{ConfirmMode: ConfirmLine}

	if strings.EqualFold(strings.TrimSpace(getenv(EnvConfirm)), ConfirmTUI) {
		cfg.ConfirmMode = ConfirmTUI
	}
	if getenv(EnvNoColor) != "" {
		cfg.Plain = true
	}

	return cfg
}

// isTerminal reports whether r is an interactive terminal
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
