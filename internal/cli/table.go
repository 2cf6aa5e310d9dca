package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arc-language/datamodels/pkg/export"
	"github.com/arc-language/datamodels/pkg/model"
)

var tableFormat string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the width table",
	Long: `Print the widths of every C type category for every data model.

Pass --model to restrict the table to one model.

Examples:
  datamodels table
  datamodels table --bits --format yaml
  datamodels table --model lp64 --format toml`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringVarP(&tableFormat, "format", "f", "", "output format (text, yaml, toml)")
}

func runTable(cmd *cobra.Command, args []string) error {
	name := tableFormat
	if name == "" && config != nil {
		name = config.Format
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	opts := export.Options{
		Format: format,
		Bits:   config != nil && config.Bits,
		Styled: export.IsTerminal(cmd.OutOrStdout()),
	}

	// Only an explicit --model narrows the table; the config default does not.
	if modelName != "" {
		m, err := selectedModel()
		if err != nil {
			return err
		}
		opts.Models = []model.DataModel{m}
	}

	log.WithFields(log.Fields{"format": opts.Format, "styled": opts.Styled, "models": len(opts.Models)}).Debug("rendering table")

	if err := export.Write(cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
