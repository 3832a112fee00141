package gc

// freeObj releases a dying slot's owned sidecar resources, dispatching on
// Tag per the table in §4.H, then marks the slot free. Sidecars must
// never themselves hold a GC-managed reference that isn't already traced
// in mark.go — §4.H's closing note.
func (g *GC) freeObj(s *Slot) {
	switch s.Tag {
	case TagFalse, TagTrue, TagFixnum, TagSymbol:
		// Immediates are never heap-allocated; this should not happen.
		return

	case TagFloat:
		// no sidecar to release, boxed or not

	case TagObject, TagClass, TagModule, TagSClass:
		// The instance-variable table (and, for classes, the method table)
		// is owned by the payload itself; clearing s.payload below is
		// enough to let it go, so there's nothing to release here that
		// isn't already handled by that final assignment.

	case TagEnv:
		// Stack, when owned (CIOff < 0), is released the same way: it has
		// no existence independent of the payload that s.payload = nil
		// drops at the end of this function.

	case TagFiber:
		fp := s.payload.(*FiberPayload)
		if fp.Ctx != nil {
			fp.Ctx.Close()
		}
		fp.Ctx = nil

	case TagArray:
		// Only a shared backing store has existence independent of this
		// slot's payload; an owned Elems buffer goes away with s.payload.
		ap := s.payload.(*ArrayPayload)
		if ap.Shared != nil {
			ap.Shared.Refs--
			if ap.Shared.Refs <= 0 {
				ap.Shared.Buf = nil
			}
		}

	case TagHash:
		// Instance variables and the entry table both live only inside
		// this payload; nothing outside it needs releasing.

	case TagString:
		// Bytes lives only inside this payload; nothing outside it needs
		// releasing.

	case TagRange:
		// Edges lives only inside this payload; nothing outside it needs
		// releasing.

	case TagData:
		dp := s.payload.(*DataPayload)
		if dp.Type != nil && dp.Type.Free != nil {
			dp.Type.Free(dp.Data)
		}

	default:
		// Unexpected tag: treat as benign rather than abort (§7).
	}

	s.Tag = TagFree
	s.payload = nil
}
