package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string
var logLevel string
var commanderName string

var rootCmd = &cobra.Command{
	Use:   "commander",
	Short: "Commander routes text commands to research agents",
	Long:  `Commander is a command-line interface for web scraping and text analysis agents.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Commander! Use --help to see available commands, or 'commander repl' to start a session.")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Path to config file or directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, off); overrides the logging block")
	rootCmd.PersistentFlags().StringVar(&commanderName, "name", "", "Name shown by the about command")
}
