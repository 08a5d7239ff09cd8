package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/haierkeys/quicknote/internal/tui"

	"github.com/spf13/cobra"
)

func init() {
	flags := new(clientFlags)

	uiCommand := &cobra.Command{
		Use:          "ui [-c config_file] [-u base_url]",
		Short:        "Open the note list in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newClientEnv(flags)
			if err != nil {
				return err
			}
			defer env.logger.Sync()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return tui.Run(ctx, env.store, env.render, env.logger)
		},
	}

	flags.register(uiCommand)
	rootCmd.AddCommand(uiCommand)
}
