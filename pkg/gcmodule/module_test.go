package gcmodule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumengc/internal/gc"
)

type fakeRegistrar struct {
	modules map[string]gc.Value
	methods map[string]MethodFunc
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{modules: make(map[string]gc.Value), methods: make(map[string]MethodFunc)}
}

func (r *fakeRegistrar) DefineModule(name string) gc.Value {
	if v, ok := r.modules[name]; ok {
		return v
	}
	v := gc.Fixnum(0) // a stand-in handle; this fake doesn't need a real object
	r.modules[name] = v
	return v
}

func (r *fakeRegistrar) DefineClassMethod(mod gc.Value, name string, fn MethodFunc) {
	r.methods[name] = fn
}

func TestRegisterBindsControlSurface(t *testing.T) {
	g := gc.New(gc.Config{PageSize: 8, ArenaSize: 8})
	r := newFakeRegistrar()

	Register(r, g)

	for _, name := range []string{"start", "enable", "disable", "interval_ratio", "interval_ratio=",
		"step_ratio", "step_ratio=", "generational_mode", "generational_mode="} {
		require.Contains(t, r.methods, name)
	}
}

func TestEnableDisableMethodsRoundTrip(t *testing.T) {
	g := gc.New(gc.Config{PageSize: 8, ArenaSize: 8})
	r := newFakeRegistrar()
	Register(r, g)

	require.Equal(t, gc.False(), r.methods["disable"](gc.Nil, nil))
	require.Equal(t, gc.True(), r.methods["disable"](gc.Nil, nil))
	require.Equal(t, gc.True(), r.methods["enable"](gc.Nil, nil))
	require.Equal(t, gc.False(), r.methods["enable"](gc.Nil, nil))
}

func TestCompatibilityShimsAlwaysReturnTrue(t *testing.T) {
	g := gc.New(gc.Config{PageSize: 8, ArenaSize: 8})
	r := newFakeRegistrar()
	Register(r, g)

	for _, name := range []string{"interval_ratio", "interval_ratio=", "step_ratio", "step_ratio=",
		"generational_mode", "generational_mode="} {
		require.Equal(t, gc.True(), r.methods[name](gc.Nil, nil), name)
		require.Equal(t, gc.True(), r.methods[name](gc.Nil, []gc.Value{gc.Fixnum(42)}), name)
	}
}
