package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlag_IsValid(t *testing.T) {
	for _, f := range []Flag{'r', 'v', 'f', 'i', 'd'} {
		require.True(t, f.IsValid(), "expected %q to be valid", rune(f))
	}
	for _, f := range []Flag{'x', 'R', '-', 'h'} {
		require.False(t, f.IsValid(), "expected %q to be invalid", rune(f))
	}
}

func TestFlags_With(t *testing.T) {
	var f Flags
	var err error

	for _, letter := range "rv" {
		f, err = f.With(Flag(letter))
		require.NoError(t, err)
	}

	require.Equal(t, Flags{Recursive: true, Verbose: true}, f)

	_, err = f.With('x')
	require.ErrorIs(t, err, ErrInvalidFlag)
	require.Contains(t, err.Error(), "'x'")
}

func TestFlags_WithAcceptsExactlyTheValidLetters(t *testing.T) {
	for _, letter := range "rvfidxRh-" {
		flag := Flag(letter)
		_, err := Flags{}.With(flag)
		if flag.IsValid() {
			require.NoError(t, err, "letter %q", letter)
		} else {
			require.ErrorIs(t, err, ErrInvalidFlag, "letter %q", letter)
		}
	}
}

func TestFlags_WithDoesNotMutateReceiver(t *testing.T) {
	base := Flags{Verbose: true}
	next, err := base.With(FlagForce)
	require.NoError(t, err)

	require.False(t, base.Force)
	require.True(t, next.Force)
}

func TestFlags_Validate(t *testing.T) {
	tests := []struct {
		name     string
		flags    Flags
		expected string
	}{
		{
			name:  "no flags",
			flags: Flags{},
		},
		{
			name:  "recursive force verbose",
			flags: Flags{Recursive: true, Force: true, Verbose: true},
		},
		{
			name:     "directory and recursive",
			flags:    Flags{Directory: true, Recursive: true},
			expected: "Cannot use flags '-d' and '-r' together.",
		},
		{
			name:     "interactive and force",
			flags:    Flags{Interactive: true, Force: true},
			expected: "Cannot use flags '-i' and '-f' together.",
		},
		{
			name:     "both conflicts report directory first",
			flags:    Flags{Directory: true, Recursive: true, Interactive: true, Force: true},
			expected: "Cannot use flags '-d' and '-r' together.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flags.Validate()
			if tt.expected == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, errors.Is(err, ErrConflictingFlags))
			require.Equal(t, tt.expected, err.Error())
		})
	}
}
