// Package remover walks targets depth-first and unlinks them.
//
// Diagnostics are written where a failure happens; the returned errors only
// carry the failure up to the caller so it can stop and set the exit status.
package remover

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/jakoblorz/go-rm/internal/filesystem"
	"github.com/jakoblorz/go-rm/internal/models"
	"github.com/jakoblorz/go-rm/internal/prompt"
	"github.com/jakoblorz/go-rm/internal/tui"
)

// Remover deletes paths according to an immutable flag set
type Remover struct {
	fs        filesystem.FileSystem
	flags     models.Flags
	confirmer prompt.Confirmer

	stdout    io.Writer
	stderr    io.Writer
	outStyles tui.Styles
	errStyles tui.Styles
}

// Options configures a Remover
type Options struct {
	FileSystem filesystem.FileSystem
	Flags      models.Flags

	// Confirmer is required when Flags.Interactive is set
	Confirmer prompt.Confirmer

	Stdout io.Writer
	Stderr io.Writer

	// Plain disables colored output
	Plain bool
}

// New creates a Remover. Conflicting flags are rejected before any
// filesystem access and reported on Stderr.
func New(opts Options) (*Remover, error) {
	if opts.FileSystem == nil {
		return nil, errors.New("filesystem is required")
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}

	r := &Remover{
		fs:        opts.FileSystem,
		flags:     opts.Flags,
		confirmer: opts.Confirmer,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		outStyles: tui.NewStyles(opts.Stdout, opts.Plain),
		errStyles: tui.NewStyles(opts.Stderr, opts.Plain),
	}

	if err := opts.Flags.Validate(); err != nil {
		r.errorf("rm: %s", err)
		return nil, err
	}
	if opts.Flags.Interactive && opts.Confirmer == nil {
		return nil, errors.New("interactive mode requires a confirmer")
	}

	return r, nil
}

// Run processes targets in order and stops at the first fatal error
func (r *Remover) Run(targets []string) error {
	for _, target := range targets {
		if err := r.Process(target); err != nil {
			return err
		}
	}
	return nil
}

// Process removes path, descending into it first when it is a directory and
// -r is set. Children are removed before their parent.
func (r *Remover) Process(path string) error {
	if r.flags.Interactive {
		ok, err := r.confirmer.Confirm(path)
		if err != nil {
			r.errorf("rm: %s", err)
			return err
		}
		if !ok {
			return nil
		}
	}

	if r.flags.Directory {
		return r.delete(path)
	}

	// A failed stat is treated as a non-directory so the deletion below still
	// runs. A missing path is left for the deletion to report (or for -f to
	// hide).
	info, err := r.fs.Stat(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.warnf("rm: stat(%s) failed", path)
	}

	if err == nil && info.IsDir() && r.flags.Recursive {
		if err := r.removeChildren(path); err != nil {
			return err
		}
	}

	return r.delete(path)
}

func (r *Remover) removeChildren(dir string) (err error) {
	stream, err := r.fs.OpenDir(dir)
	if err != nil {
		r.errorf("rm: open(%s) error", dir)
		return fmt.Errorf("%w %s: %w", models.ErrOpenDir, dir, err)
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", dir, cerr)
		}
	}()

	for {
		entry, nerr := stream.Next()
		if nerr == io.EOF {
			return nil
		}
		if nerr != nil {
			r.errorf("rm: open(%s) error", dir)
			return fmt.Errorf("%w %s: %w", models.ErrOpenDir, dir, nerr)
		}
		if entry.Skip() {
			continue
		}

		if err := r.Process(filesystem.Join(dir, entry.Name)); err != nil {
			return err
		}
	}
}

// delete unlinks path. Failures are fatal unless -f is set, in which case
// they are dropped silently and nothing is printed even with -v.
func (r *Remover) delete(path string) error {
	if err := r.fs.Remove(path); err != nil {
		if r.flags.Force {
			return nil
		}
		r.errorf("rm: %s failed to delete", path)
		return fmt.Errorf("%w %s: %w", models.ErrDeleteFailed, path, err)
	}

	if r.flags.Verbose {
		fmt.Fprintln(r.stdout, r.outStyles.Success.Render(fmt.Sprintf("rm: deleted %s", path)))
	}
	return nil
}

func (r *Remover) errorf(format string, args ...any) {
	fmt.Fprintln(r.stderr, r.errStyles.Error.Render(fmt.Sprintf(format, args...)))
}

func (r *Remover) warnf(format string, args ...any) {
	fmt.Fprintln(r.stderr, r.errStyles.Warning.Render(fmt.Sprintf(format, args...)))
}
