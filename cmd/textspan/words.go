package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/textspan"
)

var wordsCmd = &cobra.Command{
	Use:   "words [file...]",
	Short: "Locate words in each input line",
	Long: `Words prints, for every input line, the {start, end} pairs of the
segments that contain word content. Whitespace and punctuation between
words are skipped; a line without any words yields an empty list.`,
	RunE: runWords,
}

func runWords(cmd *cobra.Command, args []string) error {
	elems, err := readElements(args)
	if err != nil {
		return err
	}
	if len(elems) == 0 {
		return writeJSON(cmd.OutOrStdout(), []textspan.Matches{})
	}

	out, err := textspan.LocateWords(elems, textspan.Strings(cfg.Locale))
	if err != nil {
		return err
	}
	logger.Info("words located", zap.Int("lines", len(out)))
	return writeJSON(cmd.OutOrStdout(), out)
}
