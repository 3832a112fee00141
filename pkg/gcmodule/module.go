// Package gcmodule binds internal/gc's control surface to a host
// interpreter's module system, the way gc.c's mrb_init_gc binds the
// collector to the GC module a script sees (§6).
package gcmodule

import "github.com/lumen-lang/lumengc/internal/gc"

// MethodFunc is a bound native method: it receives the self value the
// method was called on (the GC module object) and the call's arguments,
// and returns the method's result.
type MethodFunc func(self gc.Value, args []gc.Value) gc.Value

// Registrar is whatever a host interpreter exposes for binding native
// methods onto a module. A real host wires this to its own class/module
// table; it never needs to be internal/gc- or even gcmodule-specific.
type Registrar interface {
	// DefineModule returns the (possibly newly created) module object
	// for name, rooted under the interpreter's top-level namespace.
	DefineModule(name string) gc.Value
	// DefineClassMethod binds fn as mod's class method name.
	DefineClassMethod(mod gc.Value, name string, fn MethodFunc)
}

// Register installs Lumen's GC module surface (§6) onto r, dispatching
// every call against g. interval_ratio, step_ratio and generational_mode
// are accepted-but-inert compatibility shims: this collector is always
// stop-the-world and non-generational, the same stance gc.c's
// gc_dummy_get/gc_dummy_set take on the getter/setter pairs it still
// exposes for script compatibility — both unconditionally
// `return mrb_bool_value(1)`, so every one of these six closures returns
// gc.True() regardless of its arguments.
func Register(r Registrar, g *gc.GC) {
	mod := r.DefineModule("GC")

	r.DefineClassMethod(mod, "start", func(self gc.Value, args []gc.Value) gc.Value {
		g.Start()
		return gc.Nil
	})
	r.DefineClassMethod(mod, "enable", func(self gc.Value, args []gc.Value) gc.Value {
		return gc.Bool(g.Enable())
	})
	r.DefineClassMethod(mod, "disable", func(self gc.Value, args []gc.Value) gc.Value {
		return gc.Bool(g.Disable())
	})

	r.DefineClassMethod(mod, "interval_ratio", func(self gc.Value, args []gc.Value) gc.Value {
		return gc.True()
	})
	r.DefineClassMethod(mod, "interval_ratio=", func(self gc.Value, args []gc.Value) gc.Value {
		return gc.True()
	})

	r.DefineClassMethod(mod, "step_ratio", func(self gc.Value, args []gc.Value) gc.Value {
		return gc.True()
	})
	r.DefineClassMethod(mod, "step_ratio=", func(self gc.Value, args []gc.Value) gc.Value {
		return gc.True()
	})

	r.DefineClassMethod(mod, "generational_mode", func(self gc.Value, args []gc.Value) gc.Value {
		return gc.True()
	})
	r.DefineClassMethod(mod, "generational_mode=", func(self gc.Value, args []gc.Value) gc.Value {
		return gc.True()
	})
}
