package simplify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/es-debug/luasimplify/internal/simplify"
	"github.com/spf13/cobra"
)

const usageMessage = "Please provide the input file name as an argument."

// Start runs the command line interface with the given arguments (without
// the program name). stdout receives the usage message, stderr the logs.
func Start(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}

	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("execute command: %w", err)
	}

	return nil
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simplify [flags] [--] <input-file>",
		Short: "Strip comments, blank lines and extra whitespace from a Lua script",
		Long: `Simplify writes a compacted copy of a Lua script to formatted-<input-file>
in the current directory. The first line is copied unchanged; on every other
line text after "--" is removed, whitespace runs are collapsed to a single
space and lines left empty are dropped.

Use "--" before an input file name that starts with "-".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	flags, err := readCMDFlags(cmd, args)
	if err != nil {
		var missingPath ErrMissingPath
		if errors.As(err, &missingPath) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nUsage: %s\n", usageMessage, cmd.UseLine())
		}

		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
	outPath := simplify.OutputName(flags.path)

	logger.Debug("simplifying file", slog.String("input", flags.path), slog.String("output", outPath))

	summary, err := simplify.SimplifyFile(cmd.Context(), flags.path, outPath)
	if err != nil {
		return fmt.Errorf("simplify file: %w", err)
	}

	logger.Info("file simplified", slog.Any("summary", summary))

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
