package simplify

import (
	"fmt"

	"github.com/spf13/cobra"
)

type cmdFlags struct {
	path    string
	verbose bool
}

func readCMDFlags(cmd *cobra.Command, args []string) (cmdFlags, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return cmdFlags{}, fmt.Errorf("read verbose flag: %w", err)
	}

	// Only the first argument is used, further ones are ignored. An empty
	// argument is still a path and fails when opened.
	if len(args) == 0 {
		return cmdFlags{}, ErrMissingPath{}
	}

	return cmdFlags{
		path:    args[0],
		verbose: verbose,
	}, nil
}
