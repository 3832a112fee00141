package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countLive walks every slot in every page and counts the ones that
// aren't FREE, the independent check invariant 1 (§8) asks for: it must
// always agree with g.Live().
func countLive(g *GC) int {
	n := 0
	g.EachObject(func(s *Slot) {
		if s.Tag != TagFree {
			n++
		}
	})
	return n
}

func freelistLen(p *Page) int {
	n := 0
	for s := p.freelist; s != nil; s = s.next {
		n++
	}
	return n
}

// Scenario 1: allocation triggers GC on exhaustion.
func TestScenarioAllocationTriggersGCOnExhaustion(t *testing.T) {
	g := New(Config{PageSize: 4, ArenaSize: 8})

	for i := 0; i < 4; i++ {
		g.NewString(nil, []byte("x"))
	}
	g.ArenaRestore(0)
	g.Collect()

	require.Equal(t, 0, g.Live())
	require.Equal(t, countLive(g), g.Live())
	require.Equal(t, 4, freelistLen(g.heaps))
	g.EachObject(func(s *Slot) {
		require.Equal(t, TagFree, s.Tag)
	})
}

// Scenario 2: arena pin survives allocation.
func TestScenarioArenaPinSurvivesAllocation(t *testing.T) {
	g := New(Config{PageSize: 16, ArenaSize: 8})

	a := g.NewString(nil, []byte("A"))
	for i := 0; i < 4; i++ {
		g.NewString(nil, []byte("throwaway"))
	}
	g.ArenaRestore(1)
	g.Collect()

	require.Equal(t, 1, g.Live())
	require.True(t, a.Ref.white(), "sweep repaints every survivor white")
	require.Equal(t, TagString, a.Ref.Tag)
}

// Scenario 3: range edges are traced.
func TestScenarioRangeEdgesAreTraced(t *testing.T) {
	g := New(Config{PageSize: 16, ArenaSize: 8})

	mark := g.ArenaSave()
	s1 := g.NewString(nil, []byte("s1"))
	s2 := g.NewString(nil, []byte("s2"))
	r := g.NewRange(nil, s1, s2, false)
	g.ArenaRestore(mark)
	g.Protect(r)

	g.Collect()

	require.Equal(t, 3, g.Live())
	require.Equal(t, TagString, s1.Ref.Tag)
	require.Equal(t, TagString, s2.Ref.Tag)
	require.Equal(t, TagRange, r.Ref.Tag)
}

// Scenario 4: shared array decref.
func TestScenarioSharedArrayDecref(t *testing.T) {
	g := New(Config{PageSize: 16, ArenaSize: 8})

	aux := &SharedAux{Refs: 1, Buf: []Value{Fixnum(1), Fixnum(2)}}
	mark := g.ArenaSave()
	a := g.NewArrayShared(nil, aux)
	g.ArenaRestore(mark)

	require.Equal(t, 2, aux.Refs)

	g.Collect()

	require.Equal(t, TagFree, a.Ref.Tag)
	require.Equal(t, 1, aux.Refs)
	require.NotNil(t, aux.Buf)
}

// Scenario 5: empty page retirement.
func TestScenarioEmptyPageRetirement(t *testing.T) {
	g := New(Config{PageSize: 2, ArenaSize: 8})

	mark := g.ArenaSave()
	for i := 0; i < 3; i++ {
		g.NewString(nil, []byte("x"))
	}
	g.ArenaRestore(mark)

	pagesBefore := g.HeapPages()
	require.Equal(t, 2, pagesBefore)

	g.Collect()

	require.Equal(t, 1, g.HeapPages())
	require.Equal(t, 0, g.Live())
}

// Scenario 6: disable blocks collection.
func TestScenarioDisableBlocksCollection(t *testing.T) {
	g := New(Config{PageSize: 4, ArenaSize: 8})
	g.Disable()

	mark := g.ArenaSave()
	for i := 0; i < 5; i++ {
		g.NewString(nil, []byte("x"))
	}
	g.ArenaRestore(mark)
	require.GreaterOrEqual(t, g.HeapPages(), 2)

	liveBeforeReenable := g.Live()
	require.Equal(t, 5, liveBeforeReenable)

	g.Enable()
	g.Collect()

	require.Equal(t, 0, g.Live())
}

// Round-trip / idempotence property from §8.
func TestEnableDisableRoundTrip(t *testing.T) {
	g := New(Config{PageSize: 4, ArenaSize: 8})

	require.Equal(t, false, g.Disable())
	require.Equal(t, true, g.Disable())
	require.Equal(t, true, g.Enable())
	require.Equal(t, false, g.Enable())
}

// Invariant 6: the collector is idempotent across back-to-back runs.
func TestCollectIsIdempotent(t *testing.T) {
	g := New(Config{PageSize: 8, ArenaSize: 8})

	mark := g.ArenaSave()
	kept := g.NewString(nil, []byte("kept"))
	for i := 0; i < 3; i++ {
		g.NewString(nil, []byte("drop"))
	}
	g.ArenaRestore(mark)
	g.Protect(kept)

	g.Collect()
	liveAfterFirst := g.Live()

	g.Collect()
	require.Equal(t, liveAfterFirst, g.Live())

	g.EachObject(func(s *Slot) {
		require.True(t, s.white())
	})
}
