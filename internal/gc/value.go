package gc

// Value is a tagged value: either an immediate (FALSE, TRUE, FIXNUM,
// SYMBOL) carried inline, or a reference to a heap Slot. Ref is nil for
// every immediate by construction, so markValue can skip them without
// touching the union fields, mirroring mrb_gc_mark_value's discriminant
// check in the original collector.
type Value struct {
	Tag   Tag
	Ref   *Slot
	Int   int64
	Float float64
}

// Nil is the sentinel "no value" returned by operations that have nothing
// to report (GC.start's return, an absent ensure slot). It is not part of
// the heap variant set in §3; it never appears as a Slot tag.
var Nil = Value{}

func False() Value { return Value{Tag: TagFalse} }
func True() Value  { return Value{Tag: TagTrue} }

func Bool(b bool) Value {
	if b {
		return True()
	}
	return False()
}

func Fixnum(i int64) Value  { return Value{Tag: TagFixnum, Int: i} }
func Symbol(id int64) Value { return Value{Tag: TagSymbol, Int: id} }
func Float(f float64) Value { return Value{Tag: TagFloat, Float: f} }

func FromRef(s *Slot) Value {
	if s == nil {
		return Nil
	}
	return Value{Tag: s.Tag, Ref: s}
}

// IsImmediate reports whether v carries no heap reference.
func (v Value) IsImmediate() bool { return v.Ref == nil }
