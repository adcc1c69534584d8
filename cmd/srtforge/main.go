package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "srtforge",
		Short:         "Convert bracketed-timestamp transcripts to SRT subtitles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "path to config file")

	root.AddCommand(
		newConvertCmd(),
		newBatchCmd(&cfgPath),
		newWatchCmd(&cfgPath),
	)
	return root
}
