package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/altyazi-tools/srtforge/internal/converter"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input.txt> [output.srt]",
		Short: "Convert a single transcript file to SRT",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			outputPath := outputFor(inputPath, args)

			count, err := converter.ConvertOne(inputPath, outputPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cues to %s\n", count, outputPath)
			return nil
		},
	}
}

// outputFor picks the output path: the second argument when given (with .srt
// appended if missing), otherwise the input path with its extension swapped.
func outputFor(inputPath string, args []string) string {
	if len(args) == 2 {
		out := args[1]
		if !strings.EqualFold(filepath.Ext(out), ".srt") {
			out += ".srt"
		}
		return out
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".srt"
}
