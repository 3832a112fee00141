package vm

import "github.com/lumen-lang/lumengc/internal/gc"

// Spawn allocates a FIBER object wrapping a fresh Context, ready for the
// collector's arena protocol: the caller should pin the returned value
// immediately if it isn't stored into a root before the next allocation.
func Spawn(g *gc.GC, fiberClass *gc.Slot, stackCap int) gc.Value {
	ctx := NewContext(stackCap)
	return g.NewFiber(fiberClass, ctx)
}
