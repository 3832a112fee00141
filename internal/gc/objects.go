package gc

// The constructors below are the thin layer between Alloc and a caller
// that wants a fully-shaped object rather than a bare tagged Slot. Each
// one allocates, attaches the variant's payload, and hands back a Value
// wrapping the new slot so callers never juggle a *Slot directly.

// NewObject allocates a plain OBJECT instance of class.
func (g *GC) NewObject(class *Slot) Value {
	s := g.Alloc(TagObject, class)
	s.payload = &ObjectPayload{}
	return FromRef(s)
}

// NewClass allocates a CLASS under super, belonging to class (typically
// the Class class itself).
func (g *GC) NewClass(class, super *Slot) Value {
	s := g.Alloc(TagClass, class)
	s.payload = &ClassPayload{Super: super, Methods: make(methodTable)}
	return FromRef(s)
}

// NewModule allocates a MODULE; modules share CLASS's payload shape but
// never carry a superclass of their own.
func (g *GC) NewModule(class *Slot) Value {
	s := g.Alloc(TagModule, class)
	s.payload = &ClassPayload{Methods: make(methodTable)}
	return FromRef(s)
}

// NewSClass allocates a singleton class (SCLASS) under super, belonging to
// class. Attaching it to an object is left to the caller.
func (g *GC) NewSClass(class, super *Slot) Value {
	s := g.Alloc(TagSClass, class)
	s.payload = &ClassPayload{Super: super, Methods: make(methodTable)}
	return FromRef(s)
}

// NewIClass allocates the ICLASS proxy a module inclusion inserts into an
// ancestry chain.
func (g *GC) NewIClass(class, super *Slot) Value {
	s := g.Alloc(TagIClass, class)
	s.payload = &IClassPayload{Super: super}
	return FromRef(s)
}

// NewProc allocates a PROC closing over env and target.
func (g *GC) NewProc(class, env, target *Slot) Value {
	s := g.Alloc(TagProc, class)
	s.payload = &ProcPayload{Env: env, Target: target}
	return FromRef(s)
}

// NewEnv allocates an ENV. ciOff mirrors the originating call frame's
// offset; callers detaching an environment from its frame should pass a
// negative ciOff and supply the captured stack window. Flags records the
// window's length so mark.go traces exactly "flags worth of values in
// stack[]" (§4.F) rather than the whole backing slice.
func (g *GC) NewEnv(class *Slot, ciOff int, stack []Value) Value {
	s := g.Alloc(TagEnv, class)
	s.Flags = uint32(len(stack))
	s.payload = &EnvPayload{CIOff: ciOff, Stack: stack}
	return FromRef(s)
}

// NewFiber allocates a FIBER wrapping ctx. ctx may be nil for a fiber
// that has been created but not yet started.
func (g *GC) NewFiber(class *Slot, ctx ExecContext) Value {
	s := g.Alloc(TagFiber, class)
	s.payload = &FiberPayload{Ctx: ctx}
	return FromRef(s)
}

// NewArray allocates an ARRAY that owns elems outright (no shared
// backing store).
func (g *GC) NewArray(class *Slot, elems []Value) Value {
	s := g.Alloc(TagArray, class)
	s.payload = &ArrayPayload{Elems: elems}
	return FromRef(s)
}

// NewArrayShared allocates an ARRAY that is a view onto aux, incrementing
// its reference count (§3 "Ownership").
func (g *GC) NewArrayShared(class *Slot, aux *SharedAux) Value {
	aux.Refs++
	s := g.Alloc(TagArray, class)
	s.payload = &ArrayPayload{Shared: aux}
	return FromRef(s)
}

// NewHash allocates a HASH with the given entries.
func (g *GC) NewHash(class *Slot, entries []HashEntry) Value {
	s := g.Alloc(TagHash, class)
	s.payload = &HashPayload{Table: entries}
	return FromRef(s)
}

// NewString allocates a STRING over a copy of b's bytes.
func (g *GC) NewString(class *Slot, b []byte) Value {
	buf := make([]byte, len(b))
	copy(buf, b)
	s := g.Alloc(TagString, class)
	s.payload = &StringPayload{Bytes: buf}
	return FromRef(s)
}

// NewRange allocates a RANGE between beg and end.
func (g *GC) NewRange(class *Slot, beg, end Value, exclusive bool) Value {
	s := g.Alloc(TagRange, class)
	s.payload = &RangePayload{Edges: &RangeEdges{Beg: beg, End: end}, Exclusive: exclusive}
	return FromRef(s)
}

// NewData allocates a DATA slot wrapping data under typ, the host
// finalizer descriptor invoked when the object dies (§4.H).
func (g *GC) NewData(class *Slot, typ *DataType, data any) Value {
	s := g.Alloc(TagData, class)
	s.payload = &DataPayload{Type: typ, Data: data}
	return FromRef(s)
}
