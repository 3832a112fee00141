package gc

import "math"

// Realloc is the allocator façade's slow path (§4.A, gc.c's
// mrb_realloc): ask the host allocator, and on failure — when a
// collection stands a chance of helping — trigger one full collection
// and retry exactly once before giving up.
func (g *GC) Realloc(old []byte, n int) []byte {
	p := g.allocFunc(old, n)

	if p == nil && n > 0 && g.heaps != nil {
		g.Collect()
		p = g.allocFunc(old, n)
	}

	if p == nil && n > 0 {
		if g.outOfMemory {
			// Already unwinding from an earlier OOM; raising again would
			// recurse into an allocator that just failed. Swallow it.
			return nil
		}
		g.outOfMemory = true
		raise(ErrOutOfMemory)
	} else {
		g.outOfMemory = false
	}

	return p
}

// Malloc is Realloc(nil, n).
func (g *GC) Malloc(n int) []byte { return g.Realloc(nil, n) }

// Calloc allocates space for m elements of size n and zeroes it, refusing
// the request if m*n would overflow (§4.A).
func (g *GC) Calloc(m, n int) []byte {
	if m < 0 || n < 0 {
		return nil
	}
	if n != 0 && m > math.MaxInt/n {
		return nil
	}
	// The host AllocFunc need not hand back zeroed memory, so clear it
	// here the way mrb_calloc memsets after mrb_realloc.
	p := g.Realloc(nil, m*n)
	clear(p)
	return p
}

// Free releases p via the host allocator.
func (g *GC) Free(p []byte) { g.allocFunc(p, 0) }
