package gc

import "go.uber.org/zap"

// State mirrors gc_state: which phase of a collection is presently
// running. Outside of a call to Collect it is always StateNone.
type State uint8

const (
	StateNone State = iota
	StateMark
	StateSweep
)

// AllocFunc is the host-supplied low-level allocator callback (§4.A). It
// is the Go analogue of mruby's allocf(state, old, new_size, user): pass
// newSize == 0 to free old, pass a nil old to allocate fresh. A nil
// return means the request could not be satisfied.
type AllocFunc func(old []byte, newSize int) []byte

// DefaultAllocFunc backs allocation with plain Go slices. It never
// reports out-of-memory on its own; tests that exercise the OOM path
// (§7) supply a func that fails instead.
func DefaultAllocFunc(old []byte, newSize int) []byte {
	if newSize <= 0 {
		return nil
	}
	buf := make([]byte, newSize)
	copy(buf, old)
	return buf
}

// Hook lets an embedder observe collection cycles without internal/gc
// importing the observer's package. internal/metrics is the canonical
// consumer.
type Hook interface {
	BeforeCollect(g *GC)
	AfterCollect(g *GC)
}

// Irep is a loaded compiled unit's constant pool (§4.E item 7). Len is
// the pool's logical length; Capa is its allocated capacity. Root
// enumeration only walks the smaller of the two, exactly as §4.E
// specifies, so a unit mid-growth is never over-scanned.
type Irep struct {
	Pool []Value
	Len  int
	Capa int
}

// Config carries the collector's compile-time parameters (§6) and the
// handful of embedding hooks a host needs at construction time.
type Config struct {
	PageSize  int
	ArenaSize int
	StepSize  int // reserved for a future incremental mode; unused here (§6)
	AllocFunc AllocFunc
	Logger    *zap.SugaredLogger
	Hook      Hook
}

const (
	// DefaultArenaSize is MRB_ARENA_SIZE's default capacity.
	DefaultArenaSize = 100
	// arenaSlack is the number of slots reserved so the arena-overflow
	// raise itself (which allocates an exception object) can proceed
	// (§4.D, §7).
	arenaSlack = 4
)

// GC is the heap and collector state the spec calls mrb_state's GC
// fields. Every operation takes it explicitly rather than reaching for a
// package-level global, per the "Global mutable state" design note (§9).
type GC struct {
	pageSize int

	heaps     *Page
	freeHeaps *Page
	sweeps    *Page

	arena    []*Slot
	arenaIdx int

	live            int
	liveAfterMark   int
	disabled        bool
	outOfMemory     bool
	state           State

	allocFunc AllocFunc
	log       *zap.SugaredLogger
	hook      Hook

	// Root set (§4.E). The interpreter is out of scope (§1); these
	// fields are the minimal surface it populates.
	Globals     map[string]Value
	ObjectClass *Slot
	TopSelf     Value
	Exc         *Slot
	RootContext ExecContext
	Ireps       []*Irep
}

// New constructs a heap with one initial page (§4.B mrb_init_heap).
func New(cfg Config) *GC {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.ArenaSize <= 0 {
		cfg.ArenaSize = DefaultArenaSize
	}
	if cfg.AllocFunc == nil {
		cfg.AllocFunc = DefaultAllocFunc
	}
	if cfg.Logger == nil {
		cfg.Logger = defaultLogger()
	}
	g := &GC{
		pageSize:  cfg.PageSize,
		arena:     make([]*Slot, cfg.ArenaSize),
		allocFunc: cfg.AllocFunc,
		log:       cfg.Logger,
		hook:      cfg.Hook,
		Globals:   make(map[string]Value),
	}
	g.addHeap()
	return g
}

// SetHook attaches or replaces the collection-cycle observer after
// construction (internal/metrics needs a *GC to read state from, so it
// cannot be supplied until after New returns).
func (g *GC) SetHook(h Hook) { g.hook = h }

// Live returns the number of slots currently tagged as live objects.
func (g *GC) Live() int { return g.live }

// Disabled reports whether Collect currently no-ops.
func (g *GC) Disabled() bool { return g.disabled }

// State reports the current phase of an in-progress collection.
func (g *GC) State() State { return g.state }

// OutOfMemory reports whether the allocator is currently in its
// out-of-memory-suppressed state (§7).
func (g *GC) OutOfMemory() bool { return g.outOfMemory }
