package gc

// markValue marks v's heap reference, if it has one. Immediates carry a
// nil Ref by construction, so this is also where §4.F's "mark_value
// checks the discriminant before touching memory" lands.
func (g *GC) markValue(v Value) {
	if v.Ref == nil {
		return
	}
	g.markObject(v.Ref)
}

// markObject is the tri-color marker (§4.F). White objects are painted
// black and their children are traced by dispatching on Tag; anything
// already black (or nil) returns immediately, which is what turns a
// cyclic reachability graph into a terminating walk without any extra
// visited-set bookkeeping (§9 "Cyclic object graphs").
func (g *GC) markObject(obj *Slot) {
	if obj == nil {
		return
	}
	if !obj.white() {
		return
	}
	obj.paintBlack()
	g.markObject(obj.Class)

	switch obj.Tag {
	case TagIClass:
		ip := obj.payload.(*IClassPayload)
		g.markObject(ip.Super)

	case TagClass, TagModule, TagSClass:
		cp := obj.payload.(*ClassPayload)
		g.markMethodTable(cp.Methods)
		g.markObject(cp.Super)
		// Classes are also objects: fall through to trace their instance
		// variables the same way OBJECT/DATA do (§4.F).
		fallthrough

	case TagObject, TagData:
		g.markIVarsOf(obj)

	case TagProc:
		pp := obj.payload.(*ProcPayload)
		g.markObject(pp.Env)
		g.markObject(pp.Target)

	case TagEnv:
		ep := obj.payload.(*EnvPayload)
		if ep.CIOff < 0 {
			n := int(obj.Flags)
			if n > len(ep.Stack) {
				n = len(ep.Stack)
			}
			for _, v := range ep.Stack[:n] {
				g.markValue(v)
			}
		}

	case TagFiber:
		fp := obj.payload.(*FiberPayload)
		if fp.Ctx != nil {
			g.markContext(fp.Ctx)
		}

	case TagArray:
		ap := obj.payload.(*ArrayPayload)
		for _, v := range ap.Elems {
			g.markValue(v)
		}

	case TagHash:
		hp := obj.payload.(*HashPayload)
		g.markIVars(hp.IVars)
		g.markHashTable(hp.Table)

	case TagString:
		// no outgoing references

	case TagRange:
		rp := obj.payload.(*RangePayload)
		if rp.Edges != nil {
			g.markValue(rp.Edges.Beg)
			g.markValue(rp.Edges.End)
		}

	default:
		// FALSE/TRUE/FIXNUM/SYMBOL never reach here (never heap-allocated)
		// and FREE never should; treat any other tag as benign (§7).
	}
}

func (g *GC) markIVars(t ivarTable) {
	for _, v := range t {
		g.markValue(v)
	}
}

func (g *GC) markMethodTable(t methodTable) {
	for _, v := range t {
		g.markValue(v)
	}
}

func (g *GC) markHashTable(entries []HashEntry) {
	for _, e := range entries {
		g.markValue(e.Key)
		g.markValue(e.Val)
	}
}

// markIVarsOf dispatches to whichever payload shape obj actually has.
// It handles the OBJECT, CLASS/MODULE/SCLASS and DATA payloads; HASH
// traces its own table in markObject, and STRING, ARRAY and RANGE carry
// none (§4.F, §4.H, §9).
func (g *GC) markIVarsOf(obj *Slot) {
	switch p := obj.payload.(type) {
	case *ClassPayload:
		g.markIVars(p.IVars)
	case *ObjectPayload:
		g.markIVars(p.IVars)
	case *DataPayload:
		g.markIVars(p.IVars)
	}
}
