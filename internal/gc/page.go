package gc

// DefaultPageSize is the number of slots carved out of each page when the
// embedder does not override Config.PageSize (§6 HEAP_PAGE_SIZE).
const DefaultPageSize = 1024

// Page is a fixed-size run of slots plus the bookkeeping needed to belong
// to two lists at once: every page the heap owns (linked via prev/next)
// and the subset of pages that currently have at least one free slot
// (linked via freePrev/freeNext). Grounded on the teacher's mSpanList
// insert/remove pattern (mheap.go), but threaded directly on the page
// itself rather than through a separate list head, matching gc.c's
// link_heap_page/link_free_heap_page.
type Page struct {
	slots    []Slot
	freelist *Slot

	prev, next         *Page
	freePrev, freeNext *Page
	onFreeList         bool
}

func newPage(size int) *Page {
	p := &Page{slots: make([]Slot, size)}
	var prev *Slot
	for i := range p.slots {
		s := &p.slots[i]
		s.Tag = TagFree
		s.next = prev
		prev = s
	}
	p.freelist = prev
	return p
}

func (g *GC) linkHeapPage(p *Page) {
	p.next = g.heaps
	if g.heaps != nil {
		g.heaps.prev = p
	}
	g.heaps = p
}

func (g *GC) unlinkHeapPage(p *Page) {
	if p.prev != nil {
		p.prev.next = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	}
	if g.heaps == p {
		g.heaps = p.next
	}
	p.prev = nil
	p.next = nil
}

func (g *GC) linkFreeHeapPage(p *Page) {
	if p.onFreeList {
		return
	}
	p.freeNext = g.freeHeaps
	if g.freeHeaps != nil {
		g.freeHeaps.freePrev = p
	}
	g.freeHeaps = p
	p.onFreeList = true
}

func (g *GC) unlinkFreeHeapPage(p *Page) {
	if !p.onFreeList {
		return
	}
	if p.freePrev != nil {
		p.freePrev.freeNext = p.freeNext
	}
	if p.freeNext != nil {
		p.freeNext.freePrev = p.freePrev
	}
	if g.freeHeaps == p {
		g.freeHeaps = p.freeNext
	}
	p.freePrev = nil
	p.freeNext = nil
	p.onFreeList = false
}

// addHeap allocates one fresh page, threads its slots onto its own
// free-list, and links it into both the all-pages and free-pages lists at
// the head (§4.B).
func (g *GC) addHeap() {
	p := newPage(g.pageSize)
	g.linkHeapPage(p)
	g.linkFreeHeapPage(p)
	g.logf("gc: added heap page, total pages=%d", g.HeapPages())
}

// HeapPages reports how many pages the heap currently owns.
func (g *GC) HeapPages() int {
	n := 0
	for p := g.heaps; p != nil; p = p.next {
		n++
	}
	return n
}

// FreeHeapPages reports how many pages currently have at least one free
// slot.
func (g *GC) FreeHeapPages() int {
	n := 0
	for p := g.freeHeaps; p != nil; p = p.freeNext {
		n++
	}
	return n
}
