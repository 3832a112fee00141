package gc

// prepareSweep enters the sweep phase: the cursor starts at the head of
// the all-pages list and gc_live_after_mark snapshots live before any
// slot is reclaimed (§4.G).
func (g *GC) prepareSweep() {
	g.state = StateSweep
	g.sweeps = g.heaps
	g.liveAfterMark = g.live
}

// sweep walks every page from the cursor, reclaiming unreached slots,
// retiring pages that hold no reachable slot and were not wholly freed
// in this pass (see the guard below), and re-admitting pages that were
// full at the start of the pass but now have free slots (§4.G).
func (g *GC) sweep() {
	page := g.sweeps

	for page != nil {
		next := page.next
		freed := 0
		deadSlot := true
		full := page.freelist == nil

		for i := range page.slots {
			s := &page.slots[i]
			if s.white() {
				if s.Tag != TagFree {
					g.freeObj(s)
					s.next = page.freelist
					page.freelist = s
					freed++
				}
				// Already-free slots stay exactly where they were on the
				// free-list; they aren't re-linked here.
				continue
			}
			s.paintWhite()
			deadSlot = false
		}

		// §9 Open Question 1: read literally, not "corrected". A page
		// that had zero reachable slots this pass (deadSlot) and did not
		// have every one of its slots freed just now (freed < pageSize,
		// true whenever some of those slots were already free before
		// this sweep started) is retired. See DESIGN.md / SPEC_FULL.md.
		if deadSlot && freed < g.pageSize {
			g.unlinkHeapPage(page)
			g.unlinkFreeHeapPage(page)
		} else if full && freed > 0 {
			g.linkFreeHeapPage(page)
		}

		g.live -= freed
		g.liveAfterMark -= freed
		page = next
	}

	g.sweeps = nil
	g.state = StateNone
}
