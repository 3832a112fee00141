package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumengc/internal/gc"
	"github.com/lumen-lang/lumengc/internal/vm"
)

func newRunCmd() *cobra.Command {
	var objects int
	var keep int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Allocate a synthetic workload and report collector behavior",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := gc.New(gc.Config{
				PageSize:  flagPageSize,
				ArenaSize: flagArenaSize,
				Logger:    newLogger(),
			})

			object := g.NewClass(nil, nil)
			ctx := vm.NewContext(64)
			g.RootContext = ctx

			kept := make([]gc.Value, 0, keep)
			for i := 0; i < objects; i++ {
				mark := g.ArenaSave()
				s := g.NewString(object.Ref, []byte(fmt.Sprintf("obj-%d", i)))
				if i < keep {
					kept = append(kept, s)
					ctx.Push(s)
				}
				g.ArenaRestore(mark)
			}

			g.Collect()
			fmt.Printf("allocated=%d kept=%d live=%d heap_pages=%d free_pages=%d\n",
				objects, len(kept), g.Live(), g.HeapPages(), g.FreeHeapPages())
			return nil
		},
	}
	cmd.Flags().IntVar(&objects, "objects", 10000, "number of objects to allocate")
	cmd.Flags().IntVar(&keep, "keep", 10, "number of objects to keep rooted")
	return cmd
}
