package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPageThreadsFreelist(t *testing.T) {
	p := newPage(5)

	n := 0
	for s := p.freelist; s != nil; s = s.next {
		require.Equal(t, TagFree, s.Tag)
		n++
	}
	require.Equal(t, 5, n)
}

// A page is on the free-pages list iff its free-list is non-empty (§8
// invariant 3).
func TestFreeHeapPageLinkingTracksFreelist(t *testing.T) {
	g := newTestGC(2)
	p := g.heaps
	require.True(t, p.onFreeList)

	g.Alloc(TagString, nil)
	require.True(t, p.onFreeList, "one slot still free")

	g.Alloc(TagString, nil)
	// Alloc itself unlinks the page once its free-list empties.
	require.False(t, p.onFreeList)
}

func TestLinkFreeHeapPageIsIdempotent(t *testing.T) {
	g := newTestGC(4)
	p := g.heaps

	g.linkFreeHeapPage(p)
	g.linkFreeHeapPage(p)

	count := 0
	for q := g.freeHeaps; q != nil; q = q.freeNext {
		count++
	}
	require.Equal(t, 1, count)
}

func TestUnlinkHeapPageRemovesFromAllPagesList(t *testing.T) {
	g := newTestGC(4)
	g.addHeap()
	require.Equal(t, 2, g.HeapPages())

	second := g.heaps
	g.unlinkHeapPage(second)

	require.Equal(t, 1, g.HeapPages())
}
