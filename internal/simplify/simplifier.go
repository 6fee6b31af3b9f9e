package simplify

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/es-debug/luasimplify/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Simplifier struct{}

func NewSimplifier() *Simplifier {
	return &Simplifier{}
}

const maxLineSize = 1 << 30

func (s *Simplifier) read(ctx context.Context, in io.Reader, linesChan chan<- line) error {
	defer close(linesChan)

	lineNumber := 0
	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	scan.Split(scanLines)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !scan.Scan() {
			break
		}

		select {
		case linesChan <- newLine(scan.Text(), lineNumber):
		case <-ctx.Done():
			return ctx.Err()
		}

		lineNumber++
	}

	if err := scan.Err(); err != nil {
		return fmt.Errorf("read line #%d: %w", lineNumber, err)
	}

	return nil
}

type counters struct {
	read    int
	written int
	dropped int
}

func (s *Simplifier) write(lines <-chan line, out io.Writer, cnt *counters) error {
	writer := bufio.NewWriter(out)
	first := true

	for curLine := range lines {
		cnt.read++

		text, ok := Transform(curLine.text, first)
		if first && curLine.terminated {
			text += "\n"
		}

		first = false

		if !ok {
			cnt.dropped++

			continue
		}

		if _, err := writer.WriteString(text); err != nil {
			return NewErrWriteLine(curLine.number, err)
		}

		cnt.written++
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

// Simplify copies in to out line by line, applying Transform in file order.
func (s *Simplifier) Simplify(ctx context.Context, in io.Reader, out io.Writer) (domain.Summary, error) {
	var cnt counters

	linesChan := make(chan line)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.read(egCtx, in, linesChan)
	})
	eg.Go(func() error {
		return s.write(linesChan, out, &cnt)
	})

	if err := eg.Wait(); err != nil {
		return domain.Summary{}, fmt.Errorf("eg.Wait(): %w", err)
	}

	return domain.NewSummary("", "", cnt.read, cnt.written, cnt.dropped), nil
}
