package cli

import (
	"strings"

	"github.com/jakoblorz/go-rm/internal/models"
)

// ParseArgs splits the arguments (without the program name) into flags and
// targets. Leading tokens starting with '-' are flag tokens whose letters are
// each a flag; the first other token and everything after it are targets,
// even when a later token starts with '-'. There is no "--" terminator.
func ParseArgs(args []string) (models.Flags, []string, error) {
	var flags models.Flags

	if len(args) == 0 {
		return flags, nil, models.ErrUsage
	}

	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return flags, args[i:], nil
		}

		for _, letter := range arg[1:] {
			next, err := flags.With(models.Flag(letter))
			if err != nil {
				return flags, nil, err
			}
			flags = next
		}
	}

	// Only flag tokens were given
	return flags, nil, models.ErrUsage
}
