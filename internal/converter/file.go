package converter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

const (
	scanBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// WriteCue writes the four-line SRT record for one cue: index, time range,
// text, blank separator line.
func WriteCue(w io.Writer, c Cue) error {
	_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
		c.Index, FormatTime(c.Start), FormatTime(c.End), c.Text)
	return err
}

// ConvertOne converts a single transcript file to SRT and returns the number
// of cues written. Cue numbering starts at 1 for every file.
func ConvertOne(inputPath, outputPath string) (int, error) {
	return ConvertOneContext(context.Background(), inputPath, outputPath)
}

// ConvertOneContext is ConvertOne with line-granular cancellation. The output
// file is created (or truncated) up front and written incrementally; on a
// mid-file failure the partial output is left on disk.
func ConvertOneContext(ctx context.Context, inputPath, outputPath string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}

	bw := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, scanBufferSize), maxLineSize)

	index := 1
	count := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			out.Close()
			return count, err
		}

		cue, ok := ConvertLine(scanner.Text(), index)
		if !ok {
			continue
		}
		if err := WriteCue(bw, cue); err != nil {
			out.Close()
			return count, fmt.Errorf("write cue: %w", err)
		}
		index++
		count++
	}
	if err := scanner.Err(); err != nil {
		out.Close()
		return count, fmt.Errorf("read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		out.Close()
		return count, err
	}

	if err := bw.Flush(); err != nil {
		out.Close()
		return count, fmt.Errorf("flush output: %w", err)
	}
	if err := out.Close(); err != nil {
		return count, fmt.Errorf("close output: %w", err)
	}
	return count, nil
}
