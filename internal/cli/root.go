package cli

import (
	"github.com/scriptcue/scriptcue/internal/config"
	"github.com/scriptcue/scriptcue/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scriptcue",
	Short: "Subtitle timing and segmentation for two-party dialogue scripts",
	Long: `Scriptcue turns a two-party dialogue script into time-stamped subtitle
segments using a fixed speaking-rate model, re-splits segments that are too
long to read without moving their time windows, and exports the result as
SRT, VTT, or ASS.

Segments travel between commands as cue files: one segment per line in the
form startMs,endMs,speaker,text.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language of the script text (e.g., english)")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", config.DefaultPath, "Path to a scriptcue.toml config file")
}
