package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jakoblorz/go-rm/internal/filesystem"
	"github.com/jakoblorz/go-rm/internal/models"
	"github.com/jakoblorz/go-rm/internal/prompt"
	"github.com/jakoblorz/go-rm/internal/remover"
	"github.com/jakoblorz/go-rm/internal/tui"
	"github.com/spf13/cobra"
)

const usage = "Usage: rm [-rvfid] files..."

// RmCommand handles the rm command
type RmCommand struct {
	fs  filesystem.FileSystem
	cfg Config
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, getenv Getenv) *cobra.Command {
	cmd := &RmCommand{
		fs:  fs,
		cfg: LoadConfig(getenv),
	}

	return &cobra.Command{
		Use:   "rm [-rvfid]... target...",
		Short: "Remove files and directories",
		Long: `Removes each target in the order given.

Flags may be combined in one token (e.g. -rf):
  -r  remove directory contents recursively, children before parents
  -v  print every successful deletion
  -f  ignore deletion failures (cannot be combined with -i)
  -i  confirm before each deletion (cannot be combined with -f)
  -d  remove empty directories only (cannot be combined with -r)

Flag parsing stops at the first argument that does not start with '-'.
The first failed deletion stops the whole run unless -f is given.`,
		Example: `  # Remove a directory tree and list what was removed
  rm -rv build

  # Ask before removing each file
  rm -i notes.txt draft.txt`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               cmd.Run,
	}
}

// Run executes the rm command. Every failure is reported on stderr before
// Run returns it.
func (c *RmCommand) Run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	errStyles := tui.NewStyles(stderr, c.cfg.Plain)

	flags, targets, err := ParseArgs(args)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, models.ErrInvalidFlag):
			msg = "rm: " + err.Error()
		default:
			msg = usage
		}
		fmt.Fprintln(stderr, errStyles.Error.Render(msg))
		return err
	}

	r, err := remover.New(remover.Options{
		FileSystem: c.fs,
		Flags:      flags,
		Confirmer:  c.confirmer(cmd.InOrStdin(), stdout),
		Stdout:     stdout,
		Stderr:     stderr,
		Plain:      c.cfg.Plain,
	})
	if err != nil {
		return err
	}

	return r.Run(targets)
}

func (c *RmCommand) confirmer(in io.Reader, out io.Writer) prompt.Confirmer {
	styles := tui.NewStyles(out, c.cfg.Plain)
	if c.cfg.ConfirmMode == ConfirmTUI && isTerminal(in) {
		return prompt.NewTUIConfirmer(in, out, styles)
	}
	return prompt.NewLineConfirmer(in, out, styles)
}

// Execute runs the root command against the OS filesystem
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs, nil)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
