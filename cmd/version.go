package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Long = fmt.Sprintf(`Commander %s

Routes text commands to research agents that scrape web pages, summarize
text, list page links and report readability statistics.

Settings live in HCL files (logging, researcher, fetcher and storage blocks).

Get started:
  commander verify [path]                     Validate your configuration
  commander repl                              Start an interactive session
  commander run "researcher scrape <url>"     Run one command line
  commander researcher analyze "<text>"       Call the researcher directly
  commander history                           Show recent commands`, Version)
}
