package cli

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arc-language/datamodels/pkg/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the known data models",
	Long:  `List every data model with its int/long/pointer notation and the platforms that used it.`,
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	selected := model.Invalid
	if config != nil {
		m, err := config.Model()
		if err != nil {
			log.WithError(err).Debug("no model selected")
		}
		selected = m
	}

	fmt.Fprintf(out, "Data models (int/long/ptr in bytes):\n")
	for _, m := range model.Models() {
		marker := " "
		if m == selected {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %-7s %s  %s\n", marker, m, m.Notation(), strings.Join(m.Platforms(), ", "))
	}

	if selected.Valid() {
		fmt.Fprintf(out, "\n* = selected model\n")
	}

	return nil
}
