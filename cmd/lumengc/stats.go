package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumengc/internal/gc"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print a fresh heap's starting configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := gc.New(gc.Config{
				PageSize:  flagPageSize,
				ArenaSize: flagArenaSize,
				Logger:    newLogger(),
			})
			fmt.Printf("live=%d heap_pages=%d free_pages=%d disabled=%t\n",
				g.Live(), g.HeapPages(), g.FreeHeapPages(), g.Disabled())
			return nil
		},
	}
}
