package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/textspan"
)

var flagBoundary string

var boundariesCmd = &cobra.Command{
	Use:   "boundaries [file...]",
	Short: "Locate boundaries of the chosen kind in each input line",
	Long: `Boundaries prints, for every input line, the ordered list of
boundary-delimited segments as {start, end} pairs in 1-based code-point
coordinates. The kind is one of character, line-break, sentence, or
word.`,
	RunE: runBoundaries,
}

func init() {
	boundariesCmd.Flags().StringVarP(&flagBoundary, "boundary", "b", "", "boundary kind: character, line-break, sentence, word")
}

func runBoundaries(cmd *cobra.Command, args []string) error {
	kind := flagBoundary
	if kind == "" {
		kind = cfg.Boundary
	}
	if kind == "" {
		kind = "word"
	}

	elems, err := readElements(args)
	if err != nil {
		return err
	}
	if len(elems) == 0 {
		return writeJSON(cmd.OutOrStdout(), []textspan.Matches{})
	}

	out, err := textspan.LocateBoundaries(elems,
		textspan.Strings(kind), textspan.Strings(cfg.Locale))
	if err != nil {
		return err
	}
	logger.Info("boundaries located",
		zap.String("kind", kind), zap.Int("lines", len(out)))
	return writeJSON(cmd.OutOrStdout(), out)
}
