package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type countingHook struct {
	before, after int
}

func (h *countingHook) BeforeCollect(g *GC) { h.before++ }
func (h *countingHook) AfterCollect(g *GC)  { h.after++ }

func TestCollectInvokesHookAroundTheCycle(t *testing.T) {
	g := New(Config{PageSize: 8, ArenaSize: 8})
	hook := &countingHook{}
	g.SetHook(hook)

	g.Collect()

	require.Equal(t, 1, hook.before)
	require.Equal(t, 1, hook.after)
}

func TestDisabledCollectSkipsHook(t *testing.T) {
	g := New(Config{PageSize: 8, ArenaSize: 8})
	hook := &countingHook{}
	g.SetHook(hook)
	g.Disable()

	g.Collect()

	require.Equal(t, 0, hook.before)
	require.Equal(t, 0, hook.after)
}

func TestEachObjectVisitsFreeAndLiveSlots(t *testing.T) {
	g := newTestGC(4)
	g.Alloc(TagString, nil)

	var free, live int
	g.EachObject(func(s *Slot) {
		if s.Tag == TagFree {
			free++
		} else {
			live++
		}
	})

	require.Equal(t, 1, live)
	require.Equal(t, 3, free)
}

func TestWriteBarriersAreNoOps(t *testing.T) {
	g := newTestGC(4)
	s := g.Alloc(TagString, nil)
	before := *s

	g.WriteBarrier(s)
	g.FieldWriteBarrier(s, nil)

	require.Equal(t, before, *s)
}
