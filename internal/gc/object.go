package gc

// Header is the common prefix every heap object shares: its variant tag,
// a flags word, a pointer to its class, and the color bit the collector
// uses to track reachability.
type Header struct {
	Tag   Tag
	Flags uint32
	Class *Slot
	black bool
}

func (h *Header) white() bool    { return !h.black }
func (h *Header) paintBlack()    { h.black = true }
func (h *Header) paintWhite()    { h.black = false }

// Slot is the uniform object cell §3 describes: every page is an array of
// these. A slot is live iff Tag != TagFree. A Go value of the largest
// variant layout doesn't exist the way a C union does, so the per-variant
// body lives behind payload, and mark/finalize dispatch on Tag to get the
// concrete type back — the "opaque index/handle" shape the design notes
// call for. Because each page's slots are one slice allocated once by
// newPage and Go's current collector neither compacts nor moves heap
// data, a *Slot taken from that slice is stable for the page's lifetime,
// the same guarantee
// mruby's RVALUE objects[MRB_HEAP_PAGE_SIZE] relies on.
type Slot struct {
	Header
	next    *Slot // free-list link; meaningful only while Tag == TagFree
	payload any
}

// Payload returns the variant-specific body stored in the slot. Callers
// that know the tag type-assert the result to the matching *...Payload
// type; see mark.go and finalize.go for the canonical dispatch.
func (s *Slot) Payload() any { return s.payload }
