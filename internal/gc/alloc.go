package gc

// Alloc carves a slot for a new object of the given tag/class out of the
// free-page list, following §4.C's four steps exactly:
//
//  1. If there are no pages with free slots, collect, then unconditionally
//     add a fresh page — even if the collection freed nothing, so the
//     mutator always makes progress.
//  2. Pop the head of the front free page's free-list; if that empties
//     the page, unlink it from the free-pages list.
//  3. Count it live, pin it in the arena, zero its body, and paint it
//     white.
//  4. Return it.
func (g *GC) Alloc(tag Tag, class *Slot) *Slot {
	if g.freeHeaps == nil {
		g.Collect()
		g.addHeap()
	}

	p := g.freeHeaps.freelist
	g.freeHeaps.freelist = p.next
	if g.freeHeaps.freelist == nil {
		g.unlinkFreeHeapPage(g.freeHeaps)
	}

	g.live++
	g.pin(p)

	*p = Slot{}
	p.Tag = tag
	p.Class = class
	p.paintWhite()
	return p
}
