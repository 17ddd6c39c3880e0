package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/textspan"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Compute general text statistics over the input",
	Long: `Stats prints aggregate counts over all input lines: the number of
lines, the number of lines with any non-whitespace content, and the
total and non-whitespace code-point counts.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	elems, err := readElements(args)
	if err != nil {
		return err
	}

	st, err := textspan.StatsGeneral(elems)
	if err != nil {
		return err
	}
	logger.Info("general statistics computed", zap.Int("lines", st.Lines))
	return writeJSON(cmd.OutOrStdout(), st)
}
