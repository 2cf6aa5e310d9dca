package cli

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arc-language/datamodels/pkg/model"
)

var sizeofVerbose bool

var sizeofCmd = &cobra.Command{
	Use:   "sizeof [type]",
	Short: "Print the width of a C type",
	Long: `Print the width of a C type under the selected data model.

Examples:
  datamodels sizeof long
  datamodels sizeof "long long" --model llp64
  datamodels sizeof pointer --model 4/4/8 --bits`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSizeof,
}

func init() {
	sizeofCmd.Flags().BoolVarP(&sizeofVerbose, "verbose", "v", false, "include model, type and unit in the output")
}

func runSizeof(cmd *cobra.Command, args []string) error {
	m, err := selectedModel()
	if err != nil {
		return err
	}

	// Allow `sizeof long long` without quoting
	c, err := model.ParseTypeCategory(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("parsing type: %w", err)
	}

	w := width(m, c)
	log.WithFields(log.Fields{"model": m, "type": c, "width": w}).Debug("lookup")

	if sizeofVerbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d %s\n", m, c.CName(), w, unit())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), w)
	return nil
}
