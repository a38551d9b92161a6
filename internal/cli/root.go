package cli

import (
	"github.com/patelnav/fcpsub/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fcpsub",
	Short: "AI-powered Final Cut Pro subtitle project generator",
	Long: `Fcpsub is a CLI tool that transcribes a video or audio file with AI
and exports the result as a Final Cut Pro project (FCPXML) with one
editable, stylable title clip per spoken phrase.

Title appearance can come from built-in style presets or be matched to a
house style by extracting a title template from a previously exported
FCPXML file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
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
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
}
