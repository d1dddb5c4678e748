package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is returned when no targets were supplied
	ErrUsage = errors.New("missing operand")

	// ErrInvalidFlag is returned for an unrecognized flag letter
	ErrInvalidFlag = errors.New("invalid flag")

	// ErrConflictingFlags is returned when mutually exclusive flags are combined
	ErrConflictingFlags = errors.New("conflicting flags")

	// ErrDeleteFailed is returned when a path could not be removed without -f
	ErrDeleteFailed = errors.New("failed to delete")

	// ErrOpenDir is returned when a directory could not be opened during descent
	ErrOpenDir = errors.New("failed to open directory")
)

// Flag is a single-letter option accepted on the command line
type Flag rune

const (
	// FlagRecursive removes directory contents before the directory itself
	FlagRecursive Flag = 'r'

	// FlagVerbose prints every successful deletion
	FlagVerbose Flag = 'v'

	// FlagForce ignores deletion failures
	FlagForce Flag = 'f'

	// FlagInteractive asks before every deletion
	FlagInteractive Flag = 'i'

	// FlagDirectory removes empty directories only
	FlagDirectory Flag = 'd'
)

// IsValid checks if the flag letter is recognized
func (f Flag) IsValid() bool {
	switch f {
	case FlagRecursive, FlagVerbose, FlagForce, FlagInteractive, FlagDirectory:
		return true
	default:
		return false
	}
}

// String returns the flag as it is written on the command line
func (f Flag) String() string {
	return "-" + string(rune(f))
}

// Flags is the immutable option set for one invocation.
// It is built once by the argument parser and passed by value.
type Flags struct {
	Recursive   bool
	Verbose     bool
	Force       bool
	Interactive bool
	Directory   bool
}

// With returns a copy of f with the given flag set
func (f Flags) With(flag Flag) (Flags, error) {
	if !flag.IsValid() {
		return f, fmt.Errorf("%w '%c'", ErrInvalidFlag, rune(flag))
	}

	switch flag {
	case FlagRecursive:
		f.Recursive = true
	case FlagVerbose:
		f.Verbose = true
	case FlagForce:
		f.Force = true
	case FlagInteractive:
		f.Interactive = true
	case FlagDirectory:
		f.Directory = true
	}
	return f, nil
}

// Conflict describes a pair of flags that cannot be used together
type Conflict struct {
	A, B Flag
}

func (c Conflict) Error() string {
	return fmt.Sprintf("Cannot use flags '%s' and '%s' together.", c.A, c.B)
}

// Unwrap lets callers match conflicts with errors.Is(err, ErrConflictingFlags)
func (c Conflict) Unwrap() error {
	return ErrConflictingFlags
}

// Validate returns a Conflict for the first mutually exclusive pair that is set.
// -d/-r is checked before -i/-f.
func (f Flags) Validate() error {
	if f.Directory && f.Recursive {
		return Conflict{A: FlagDirectory, B: FlagRecursive}
	}
	if f.Interactive && f.Force {
		return Conflict{A: FlagInteractive, B: FlagForce}
	}
	return nil
}
