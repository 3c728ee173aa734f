// Command periodctl is the operator CLI: schema migrations and one-off
// maintenance jobs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/cycletrack-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "periodctl",
		Short:        "Cycle tracking operator CLI",
		SilenceUsage: true,
		Version:      app.BuildVersion(),
	}
	root.PersistentFlags().String("config", "", "config file (overrides CONFIG_PATH)")
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before config")

	root.AddCommand(newMigrateCmd(), newSweepCmd(), newCleanupSessionsCmd())
	return root
}
