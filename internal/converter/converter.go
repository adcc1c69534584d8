package converter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimestamp is returned when a timestamp component cannot be parsed.
// Callers recover by skipping the offending line; it never aborts a file.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

var (
	timeRangeRe = regexp.MustCompile(`\[(\d+:\d+\.\d+)\s*->\s*(\d+:\d+\.\d+)\]`)
	bracketRe   = regexp.MustCompile(`\[.*?\]`)
)

// Cue is a single SRT subtitle entry. Start and End are total seconds;
// Start < End and Text is non-empty for every cue produced by ConvertLine.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// ConvertLine turns one raw transcript line into an SRT cue.
//
// Lines without a bracketed time range, lines whose interval is degenerate
// (start >= end), lines with a malformed timestamp, and lines that are empty
// after stripping bracketed tokens all yield no cue. The caller increments
// nextIndex only when a cue is actually produced, so output numbering stays
// contiguous regardless of skipped lines.
func ConvertLine(rawLine string, nextIndex int) (Cue, bool) {
	m := timeRangeRe.FindStringSubmatch(rawLine)
	if m == nil {
		return Cue{}, false
	}

	start, err := TimeToSeconds(m[1])
	if err != nil {
		return Cue{}, false
	}
	end, err := TimeToSeconds(m[2])
	if err != nil {
		return Cue{}, false
	}

	if start >= end {
		return Cue{}, false
	}

	text := strings.TrimSpace(bracketRe.ReplaceAllString(rawLine, ""))
	if text == "" {
		return Cue{}, false
	}

	return Cue{
		Index: nextIndex,
		Start: start,
		End:   end,
		Text:  text,
	}, true
}

// TimeToSeconds parses a "m:ss.sss" timestamp into total seconds,
// clamped to a minimum of 0.
func TimeToSeconds(timestamp string) (float64, error) {
	minutePart, secondPart, found := strings.Cut(timestamp, ":")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}

	minutes, err := strconv.ParseFloat(minutePart, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}
	seconds, err := strconv.ParseFloat(secondPart, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}

	total := minutes*60 + seconds
	if total < 0 {
		total = 0
	}
	return total, nil
}

// FormatTime renders total seconds as "HH:MM:SS,mmm", truncating (not
// rounding) to millisecond precision. Hours grow past two digits unwrapped.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	totalMs := int64(seconds * 1000)
	ms := totalMs % 1000
	total := totalMs / 1000
	minutes, secs := total/60, total%60
	hours, mins := minutes/60, minutes%60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, mins, secs, ms)
}
