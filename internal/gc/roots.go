package gc

// markRoots seeds a collection by marking every root named in §4.E: the
// global table, the arena, the primordial class, top-self, the pending
// exception, the root execution context, and each loaded unit's constant
// pool.
func (g *GC) markRoots() {
	for _, v := range g.Globals {
		g.markValue(v)
	}
	for i := 0; i < g.arenaIdx; i++ {
		g.markObject(g.arena[i])
	}
	g.markObject(g.ObjectClass)
	g.markValue(g.TopSelf)
	g.markObject(g.Exc)

	if g.RootContext != nil {
		g.markContext(g.RootContext)
	}

	for _, irep := range g.Ireps {
		if irep == nil {
			continue
		}
		n := irep.Len
		if irep.Capa < n {
			n = irep.Capa
		}
		if n > len(irep.Pool) {
			n = len(irep.Pool)
		}
		for i := 0; i < n; i++ {
			g.markValue(irep.Pool[i])
		}
	}
}

// markContext traces the three regions of an execution context §4.E
// names: the value stack, the ensure stack, and the call-info chain, then
// follows the previous context's fiber if it has one.
func (g *GC) markContext(c ExecContext) {
	for _, v := range c.StackValues() {
		g.markValue(v)
	}
	for _, ref := range c.EnsureRefs() {
		g.markObject(ref)
	}
	for _, ci := range c.CallInfos() {
		g.markObject(ci.Env)
		g.markObject(ci.Proc)
		g.markObject(ci.Target)
	}
	if fib := c.PrevFiber(); fib != nil {
		g.markObject(fib)
	}
}
