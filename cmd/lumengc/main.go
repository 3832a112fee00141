// Command lumengc is a small harness around internal/gc: enough to drive
// a synthetic workload through the collector from a shell, for manual
// testing and demos (§6's "embedding API" has no script of its own to
// drive it otherwise).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagPageSize  int
	flagArenaSize int
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lumengc",
		Short: "Drive and inspect the Lumen heap and collector",
	}
	root.PersistentFlags().IntVar(&flagPageSize, "page-size", 0, "slots per heap page (0 = default)")
	root.PersistentFlags().IntVar(&flagArenaSize, "arena-size", 0, "arena depth (0 = default)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newServeCmd())
	return root
}

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
