package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arc-language/datamodels/pkg/core"
	"github.com/arc-language/datamodels/pkg/model"
)

var (
	cfgFile   string
	modelName string
	bits      bool
	debug     bool
	config    *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "datamodels",
	Short: "C data model width tables",
	Long: `datamodels - C data model width tables

Look up the byte and bit widths of char, short, int, long, long long and
pointers under the LP32, ILP32, LLP64, LP64, ILP64 and SILP64 data models.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/datamodels/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "data model to use (LP32, ILP32, LLP64, LP64, ILP64, SILP64 or int/long/ptr like 4/8/8)")
	rootCmd.PersistentFlags().BoolVar(&bits, "bits", false, "report widths in bits instead of bytes")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(sizeofCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		log.WithError(err).Warn("falling back to default config")
		config = core.DefaultConfig()
	}

	// Override config with flags
	if modelName != "" {
		config.DefaultModel = modelName
	}
	// Boolean flags win over the file only when given, so --bits=false can
	// turn off bits: true.
	flags := rootCmd.PersistentFlags()
	if flags.Changed("bits") {
		config.Bits = bits
	}
	if flags.Changed("debug") {
		config.Debug = debug
	}

	if config.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.WithFields(log.Fields{
		"config": cfgFile,
		"model":  config.DefaultModel,
		"format": config.Format,
		"bits":   config.Bits,
	}).Debug("configuration loaded")
}

// selectedModel resolves the model chosen by flag or config file
func selectedModel() (model.DataModel, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	m, err := config.Model()
	if err != nil {
		return model.Invalid, fmt.Errorf("selecting model: %w", err)
	}
	return m, nil
}

// unit names the width unit currently in effect
func unit() string {
	if config != nil && config.Bits {
		return "bits"
	}
	return "bytes"
}

// width returns the width of c under m in the unit currently in effect
func width(m model.DataModel, c model.TypeCategory) int {
	if config != nil && config.Bits {
		return model.BitsOf(m, c)
	}
	return model.SizeOf(m, c)
}
