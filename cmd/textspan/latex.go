package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/textspan"
)

var latexCmd = &cobra.Command{
	Use:   "latex [file...]",
	Short: "Compute LaTeX word-count statistics over the input",
	Long: `Latex prints aggregate LaTeX word-count statistics over all input
lines: words, commands, environments, and the code-point counts of
word, command/environment, and whitespace characters.`,
	RunE: runLatex,
}

func runLatex(cmd *cobra.Command, args []string) error {
	elems, err := readElements(args)
	if err != nil {
		return err
	}

	st, err := textspan.StatsLatex(elems)
	if err != nil {
		return err
	}
	logger.Info("latex statistics computed",
		zap.Int("words", st.Words), zap.Int("cmds", st.Cmds), zap.Int("envirs", st.Envirs))
	return writeJSON(cmd.OutOrStdout(), st)
}
