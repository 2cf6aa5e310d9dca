package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arc-language/datamodels/pkg/model"
)

var guessCmd = &cobra.Command{
	Use:   "guess [int] [long] [pointer]",
	Short: "Name the data model for int, long and pointer widths",
	Long: `Name the data model whose int, long and pointer widths in bytes match
the arguments.

Examples:
  datamodels guess 4 8 8
  datamodels guess 4 4 8`,
	Args: cobra.ExactArgs(3),
	RunE: runGuess,
}

func runGuess(cmd *cobra.Command, args []string) error {
	var sizes [3]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("parsing width %q: %w", arg, err)
		}
		sizes[i] = n
	}

	m, err := model.Guess(sizes[0], sizes[1], sizes[2])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", m, m.Description())
	return nil
}
