package simplify

import (
	"context"
	"fmt"
	"os"

	"github.com/es-debug/luasimplify/internal/domain"
)

const outputPrefix = "formatted-"

// OutputName prefixes the given input argument with "formatted-". The
// argument is not split into directory and base name.
func OutputName(input string) string {
	return outputPrefix + input
}

// SimplifyFile simplifies inPath into outPath, truncating outPath if it
// exists. Nothing is created when inPath cannot be opened.
func SimplifyFile(ctx context.Context, inPath, outPath string) (summary domain.Summary, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("open input file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("create output file: %w", err)
	}

	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	summary, err = NewSimplifier().Simplify(ctx, in, out)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("simplify %s: %w", inPath, err)
	}

	return summary.WithPaths(inPath, outPath), nil
}
