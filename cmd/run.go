package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [command line...]",
	Short: "Run one command line through the commander",
	Long: `Run executes a single command line the same way the interactive session does.
A single argument is taken as the whole line, so shell quoting is preserved:

  commander run "researcher summarize 'First point. Second point. Third point.'"
  commander run researcher scrape https://example.com`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		a := mustApp(ctx)
		defer a.Close()

		line := args[0]
		if len(args) > 1 {
			line = joinArgs(args)
		}
		fmt.Println(a.commander.ExecuteCommand(ctx, line))
	},
}

// joinArgs rebuilds a command line from already split arguments, quoting any
// argument the tokenizer would otherwise split.
func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg != "" && !strings.ContainsAny(arg, " \t\n'\"\\#") {
			quoted[i] = arg
			continue
		}
		quoted[i] = "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
	}
	return strings.Join(quoted, " ")
}

func init() {
	rootCmd.AddCommand(runCmd)
}
