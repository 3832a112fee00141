package gc

// The payload types below are the closed set of per-variant bodies named
// in §3. They are deliberately thin: the real string/array/hash/class
// internals are out of scope for this collector (§1) and live in whatever
// host language owns them. What's here is just enough structure for
// mark.go, finalize.go and the end-to-end tests to exercise every
// reachability and ownership rule the spec describes.

// ivarTable stands in for the host's instance-variable table.
type ivarTable map[string]Value

// methodTable stands in for the host's method table. Methods are carried
// as Values (usually PROC) so they can reference other heap objects.
type methodTable map[string]Value

// ObjectPayload backs OBJECT and, via embedding, any plain instance.
type ObjectPayload struct {
	IVars ivarTable
}

// ClassPayload backs CLASS, MODULE and SCLASS, which share a shape: a
// superclass link, a method table, and (since classes are themselves
// objects) an instance-variable table.
type ClassPayload struct {
	Super   *Slot
	Methods methodTable
	IVars   ivarTable
}

// IClassPayload backs ICLASS, the proxy a module's inclusion creates in a
// class's ancestry chain. It only carries the link mark() actually
// traces (§4.F): the method table it exposes is borrowed from the
// included module and is not separately owned or marked here.
type IClassPayload struct {
	Super *Slot
}

// ProcPayload backs PROC: a closure over an environment and the class it
// was defined against.
type ProcPayload struct {
	Env    *Slot
	Target *Slot
}

// EnvPayload backs ENV. When CIOff is negative the environment has been
// detached from its originating call frame and owns its register window
// outright; Stack then holds that window and must be traced and freed.
// Otherwise the window is still live via the owning context's stack roots
// and Stack is unused.
type EnvPayload struct {
	CIOff int
	Stack []Value
}

// FiberPayload backs FIBER: a first-class handle onto a suspended
// execution context. Ctx is nil only for a not-yet-started fiber.
type FiberPayload struct {
	Ctx ExecContext
}

// SharedAux is the reference-counted backing store two or more ARRAY
// slots can point at after a copy-on-write split. The finalizer
// decrements the count and only releases Buf when it reaches zero (§3
// "Ownership", §4.H).
type SharedAux struct {
	Refs int
	Buf  []Value
}

// ArrayPayload backs ARRAY. Shared is non-nil when the array's storage is
// a view onto a SharedAux rather than an owned buffer.
type ArrayPayload struct {
	Elems  []Value
	Shared *SharedAux
}

// HashEntry is one key/value pair of a HashPayload's table.
type HashEntry struct {
	Key Value
	Val Value
}

// HashPayload backs HASH. Unlike STRING, ARRAY and RANGE, a hash carries
// its own instance-variable table (§4.F, §4.H, and the Open Question in
// §9 about this asymmetry) in addition to its entries.
type HashPayload struct {
	IVars ivarTable
	Table []HashEntry
}

// StringPayload backs STRING: raw bytes, no outgoing references.
type StringPayload struct {
	Bytes []byte
}

// RangeEdges holds a range's two endpoints, which may themselves be heap
// values (e.g. a range of strings).
type RangeEdges struct {
	Beg Value
	End Value
}

// RangePayload backs RANGE. Edges is nil for a range that was allocated
// but never initialized.
type RangePayload struct {
	Edges     *RangeEdges
	Exclusive bool
}

// DataType describes a host-defined DATA kind: a name for diagnostics and
// an optional finalizer hook invoked with the opaque payload.
type DataType struct {
	Name string
	Free func(data any)
}

// DataPayload backs DATA: a user-supplied opaque value plus the finalizer
// that knows how to release it, and (like OBJECT) an instance-variable
// table.
type DataPayload struct {
	Type  *DataType
	Data  any
	IVars ivarTable
}
