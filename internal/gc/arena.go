package gc

// ArenaSave returns the current arena depth. Pair with ArenaRestore to
// bracket a burst of allocations whose intermediates shouldn't outlive
// the call (§4.D).
func (g *GC) ArenaSave() int { return g.arenaIdx }

// ArenaRestore truncates the arena back to idx. Anything pinned after the
// matching Save is no longer a root; it is reclaimed by the next
// collection unless something else still references it.
func (g *GC) ArenaRestore(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(g.arena) {
		idx = len(g.arena)
	}
	g.arenaIdx = idx
}

// Protect explicitly pins v's heap reference in the arena; immediates are
// ignored (§4.D).
func (g *GC) Protect(v Value) {
	if v.Ref == nil {
		return
	}
	g.pin(v.Ref)
}

// pin pushes p onto the arena, raising ErrArenaOverflow if it would
// overflow. Four slots of slack are reserved before raising so the raise
// itself — which allocates an exception object — can still pin that
// object (§4.D, §7).
func (g *GC) pin(p *Slot) {
	if p == nil {
		return
	}
	if g.arenaIdx >= len(g.arena) {
		g.arenaIdx = len(g.arena) - arenaSlack
		if g.arenaIdx < 0 {
			g.arenaIdx = 0
		}
		raise(ErrArenaOverflow)
	}
	g.arena[g.arenaIdx] = p
	g.arenaIdx++
}
