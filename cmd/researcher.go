package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var researcherCmd = &cobra.Command{
	Use:   "researcher [command] [args...]",
	Short: "Call the researcher agent directly",
	Long: `Call a researcher command without going through the commander.

Commands:
  scrape <url>               Extract text content from a website
  summarize <text_or_url>    Generate a brief summary of a text
  extract-links <url>        Extract links from a webpage
  analyze <text_or_url>      Analyze text content (word count, readability, etc.)
  help                       List the commands with usage and examples`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		a := mustApp(ctx)
		defer a.Close()

		fmt.Println(a.researcher.Execute(ctx, strings.ToLower(args[0]), args[1:]))
	},
}

func init() {
	rootCmd.AddCommand(researcherCmd)
}
