// Package vm supplies the one external collaborator internal/gc's root
// enumeration depends on but does not own: a concrete execution context.
// It is a minimal register-machine stack, enough to drive the collector's
// tests and the cmd/lumengc demo without pulling in a real interpreter.
package vm

import "github.com/lumen-lang/lumengc/internal/gc"

// Context is a single fiber's execution state: a value stack, a call-info
// chain, and an ensure stack of pending protected blocks. It implements
// gc.ExecContext so internal/gc can trace it as a root without importing
// this package. Call frames are gc.CallInfo values directly; vm has no
// reason to keep a parallel type the interface would just have to be
// converted back out of.
type Context struct {
	stack    []gc.Value
	stackTop int

	calls []gc.CallInfo

	ensure []*gc.Slot

	prevFiber *gc.Slot
	closed    bool
}

// NewContext allocates a context with a value stack of the given capacity.
func NewContext(stackCap int) *Context {
	return &Context{stack: make([]gc.Value, stackCap)}
}

// Push grows the active register window by one and stores v there.
func (c *Context) Push(v gc.Value) {
	if c.stackTop == len(c.stack) {
		grown := make([]gc.Value, len(c.stack)*2+1)
		copy(grown, c.stack)
		c.stack = grown
	}
	c.stack[c.stackTop] = v
	c.stackTop++
}

// Pop shrinks the active register window by one, returning the value that
// was on top. Popping an empty context returns gc.Nil.
func (c *Context) Pop() gc.Value {
	if c.stackTop == 0 {
		return gc.Nil
	}
	c.stackTop--
	v := c.stack[c.stackTop]
	c.stack[c.stackTop] = gc.Nil
	return v
}

// EnterCall pushes a new call-info frame, the Go analogue of mrb's
// cipush.
func (c *Context) EnterCall(ci gc.CallInfo) { c.calls = append(c.calls, ci) }

// LeaveCall pops the innermost call-info frame.
func (c *Context) LeaveCall() {
	if len(c.calls) == 0 {
		return
	}
	c.calls = c.calls[:len(c.calls)-1]
}

// PushEnsure records a protected block's target so it is still reachable
// if the fiber is suspended mid-unwind.
func (c *Context) PushEnsure(s *gc.Slot) { c.ensure = append(c.ensure, s) }

// PopEnsure discards the innermost ensure entry.
func (c *Context) PopEnsure() {
	if len(c.ensure) == 0 {
		return
	}
	c.ensure = c.ensure[:len(c.ensure)-1]
}

// SetPrevFiber records the fiber this context resumes into when it
// yields or returns.
func (c *Context) SetPrevFiber(fib *gc.Slot) { c.prevFiber = fib }

// StackValues implements gc.ExecContext.
func (c *Context) StackValues() []gc.Value { return c.stack[:c.stackTop] }

// EnsureRefs implements gc.ExecContext.
func (c *Context) EnsureRefs() []*gc.Slot { return c.ensure }

// CallInfos implements gc.ExecContext.
func (c *Context) CallInfos() []gc.CallInfo { return c.calls }

// PrevFiber implements gc.ExecContext.
func (c *Context) PrevFiber() *gc.Slot { return c.prevFiber }

// Close implements gc.ExecContext. It is invoked once, by a FIBER's
// finalizer, and releases the stack so a suspended fiber that is
// collected doesn't keep its register window pinned via nothing.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.stack = nil
	c.stackTop = 0
	c.calls = nil
	c.ensure = nil
}
