package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"commander/streamers"
	"commander/streamers/cli"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive command session",
	Long:  `Start an interactive session. Type 'help' for commands and 'exit' or 'quit' to leave.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		a := mustApp(ctx)
		defer a.Close()

		streamer := cli.NewSessionHandler(cli.SessionOptions{
			Interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
		})
		streamer.Welcome(a.commander.Name(), a.commander.Version())

		if err := streamers.Serve(ctx, streamer, a.commander); err != nil {
			a.Close()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
