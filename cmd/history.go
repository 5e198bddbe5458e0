package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commander/agent"
)

var historyLimit int
var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the command history",
	Long:  `Show the most recent commands recorded by the configured storage backend, or clear them with --clear.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		a := mustApp(ctx)
		defer a.Close()

		if historyClear {
			if err := a.history.Clear(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				a.Close()
				os.Exit(1)
			}
			fmt.Println("History cleared")
			return
		}

		entries, err := a.history.List(ctx, historyLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			a.Close()
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("No commands in history.")
			return
		}
		fmt.Println(agent.FormatHistory(entries))
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all recorded commands")
}
