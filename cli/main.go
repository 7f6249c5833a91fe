package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mwantia/pathkit/log"
)

var logger = log.New("pathkit", log.Info, "")

var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "Filesystem convenience toolkit",
	Long: `pathkit exposes the module-level filesystem operations for scripting:
listing, clearing and deleting directory trees, reading and writing file
content, counting and searching text, and deriving stamped filenames.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().String("log-file", "", "Mirror output into a rotated log file")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.Level = log.Debug
		}
		if file, _ := cmd.Flags().GetString("log-file"); file != "" {
			logger = log.New(logger.Name, logger.Level, file)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
