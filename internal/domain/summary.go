package domain

import "log/slog"

// Summary describes a single simplification run.
type Summary struct {
	InputPath    string
	OutputPath   string
	LinesRead    int
	LinesWritten int
	LinesDropped int
}

func NewSummary(inputPath, outputPath string, linesRead, linesWritten, linesDropped int) Summary {
	return Summary{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		LinesRead:    linesRead,
		LinesWritten: linesWritten,
		LinesDropped: linesDropped,
	}
}

func (s Summary) WithPaths(inputPath, outputPath string) Summary {
	s.InputPath = inputPath
	s.OutputPath = outputPath

	return s
}

func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("input", s.InputPath),
		slog.String("output", s.OutputPath),
		slog.Int("read", s.LinesRead),
		slog.Int("written", s.LinesWritten),
		slog.Int("dropped", s.LinesDropped),
	)
}
