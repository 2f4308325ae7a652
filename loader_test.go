package salad

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sentinel returns a distinct non-zero address for p.
func sentinel(p Proc) uintptr {
	return 0x10000 + uintptr(p)*0x10
}

// identity resolves every known name to its sentinel.
func identity(name string, _ any) uintptr {
	p, ok := ProcByName(name)
	if !ok {
		return 0
	}
	return sentinel(p)
}

func nothing(string, any) uintptr { return 0 }

// withoutGroup resolves like identity except for procs of g.
func withoutGroup(g Group) LoadFunc {
	return func(name string, arg any) uintptr {
		if p, ok := ProcByName(name); ok && p.Group() == g {
			return 0
		}
		return identity(name, arg)
	}
}

func filled(addr uintptr) *Table {
	var t Table
	for p := range t.slots {
		t.slots[p] = addr
	}
	return &t
}

func TestLoadFuncStrictSuccess(t *testing.T) {
	var tab Table
	err := New(WithStrict(true)).LoadFunc(&tab, identity, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, g := range Groups() {
		if !g.Required() {
			continue
		}
		for _, p := range g.Procs() {
			if tab.Addr(p) == 0 {
				t.Errorf("required proc %s not resolved", p)
			}
		}
	}
}

func TestLoadFuncNilResolver(t *testing.T) {
	for _, strict := range []bool{false, true} {
		t.Run(fmt.Sprintf("strict=%t", strict), func(t *testing.T) {
			tab := filled(0)
			tab.set(AlEnable, 0xdead)
			tab.set(AlGenEffects, 0xbeef)
			want := *tab

			err := New(WithStrict(strict)).LoadFunc(tab, nil, uintptr(1))
			if !errors.Is(err, ErrNilLoadFunc) {
				t.Fatalf("error = %v, want %v", err, ErrNilLoadFunc)
			}
			if *tab != want {
				t.Error("table was modified by a load with a nil resolver")
			}
		})
	}
}

func TestLoadFuncNilTable(t *testing.T) {
	err := New().LoadFunc(nil, identity, nil)
	if !errors.Is(err, ErrNilTable) {
		t.Errorf("error = %v, want %v", err, ErrNilTable)
	}
}

func TestLoadFuncAllNull(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		tab := filled(0x1234)
		err := New(WithStrict(true)).LoadFunc(tab, nothing, nil)
		if !errors.Is(err, ErrMissingSymbol) {
			t.Fatalf("error = %v, want %v", err, ErrMissingSymbol)
		}
		var missing *MissingError
		if !errors.As(err, &missing) {
			t.Fatalf("error %T is not a *MissingError", err)
		}
		var want []Proc
		for _, g := range Groups() {
			if g.Required() {
				want = append(want, g.Procs()...)
			}
		}
		if !cmp.Equal(missing.Procs, want) {
			t.Errorf("unexpected missing procs:\n%s", cmp.Diff(want, missing.Procs))
		}
		if got := tab.Resolved(GroupCore, GroupContext); len(got) != 0 {
			t.Errorf("required procs resolved after null load: %v", got)
		}
		for _, p := range GroupEFX.Procs() {
			if tab.Addr(p) != 0x1234 {
				t.Errorf("%s = %#x, want untouched 0x1234", p, tab.Addr(p))
			}
		}
	})

	t.Run("lax", func(t *testing.T) {
		tab := filled(0x1234)
		err := New(WithStrict(false)).LoadFunc(tab, nothing, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, p := range Procs() {
			if tab.Addr(p) != 0 {
				t.Errorf("%s = %#x, want 0", p, tab.Addr(p))
			}
		}
	})
}

func TestLoadFuncOverwrites(t *testing.T) {
	first := func(name string, arg any) uintptr {
		return identity(name, arg) + 1
	}
	// second knows only the context API.
	second := func(name string, arg any) uintptr {
		p, ok := ProcByName(name)
		if !ok || p.Group() != GroupContext {
			return 0
		}
		return sentinel(p)
	}

	var tab Table
	l := New(WithStrict(false))
	if err := l.LoadFunc(&tab, first, nil); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := l.LoadFunc(&tab, second, nil); err != nil {
		t.Fatalf("second load: %v", err)
	}

	for _, p := range Procs() {
		want := second(p.String(), nil)
		if got := tab.Addr(p); got != want {
			t.Errorf("%s = %#x, want %#x", p, got, want)
		}
	}
}

func TestLoadFuncExtensionNeverFails(t *testing.T) {
	var tab Table
	err := New(WithStrict(true)).LoadFunc(&tab, withoutGroup(GroupEFX), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tab.Complete(GroupCore, GroupContext) {
		t.Errorf("required procs missing: %v", tab.Missing(GroupCore, GroupContext))
	}
	if got := tab.Resolved(GroupEFX); len(got) != 0 {
		t.Errorf("EFX procs resolved: %v", got)
	}
}

func TestLoadFuncStrictMissingContext(t *testing.T) {
	tab := filled(0x5555)
	err := New(WithStrict(true)).LoadFunc(tab, withoutGroup(GroupContext), nil)
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingError", err)
	}
	if !cmp.Equal(missing.Procs, GroupContext.Procs()) {
		t.Errorf("unexpected missing procs:\n%s", cmp.Diff(GroupContext.Procs(), missing.Procs))
	}
	for _, p := range GroupCore.Procs() {
		if tab.Addr(p) != sentinel(p) {
			t.Errorf("%s = %#x, want %#x", p, tab.Addr(p), sentinel(p))
		}
	}
	// A failed strict load stops before the extension group.
	for _, p := range GroupEFX.Procs() {
		if tab.Addr(p) != 0x5555 {
			t.Errorf("%s = %#x, want untouched 0x5555", p, tab.Addr(p))
		}
	}
}

func TestLoadFuncStrictStopsBeforeExtensions(t *testing.T) {
	var required []string
	for _, g := range Groups() {
		if g.Required() {
			for _, p := range g.Procs() {
				required = append(required, p.String())
			}
		}
	}

	tests := []struct {
		name   string
		strict bool
		want   int
	}{
		{name: "strict", strict: true, want: len(required)},
		{name: "lax", strict: false, want: len(Procs())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := filled(0x5555)
			var names []string
			resolve := func(name string, _ any) uintptr {
				names = append(names, name)
				return 0
			}
			err := New(WithStrict(tt.strict)).LoadFunc(tab, resolve, nil)
			if tt.strict != (err != nil) {
				t.Fatalf("strict=%t error = %v", tt.strict, err)
			}
			if len(names) != tt.want {
				t.Errorf("resolver called %d times, want %d", len(names), tt.want)
			}
			if !cmp.Equal(names[:len(required)], required) {
				t.Errorf("unexpected resolution order:\n%s", cmp.Diff(required, names[:len(required)]))
			}
			wantEFX := uintptr(0)
			if tt.strict {
				wantEFX = 0x5555
			}
			if got := tab.Addr(AlGenEffects); got != wantEFX {
				t.Errorf("%s = %#x, want %#x", AlGenEffects, got, wantEFX)
			}
		})
	}
}

func TestLoadFuncForwardsContext(t *testing.T) {
	type opaque struct{ id int }
	ctx := &opaque{id: 7}

	var (
		names []string
		bad   int
	)
	resolve := func(name string, arg any) uintptr {
		names = append(names, name)
		if arg != any(ctx) {
			bad++
		}
		return identity(name, arg)
	}

	var tab Table
	if err := New(WithStrict(true)).LoadFunc(&tab, resolve, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bad != 0 {
		t.Errorf("%d resolver calls saw a different context", bad)
	}

	// Required groups first, then extensions, each exactly once.
	var want []string
	for _, required := range []bool{true, false} {
		for _, g := range Groups() {
			if g.Required() != required {
				continue
			}
			for _, p := range g.Procs() {
				want = append(want, p.String())
			}
		}
	}
	if !cmp.Equal(names, want) {
		t.Errorf("unexpected resolution order:\n%s", cmp.Diff(want, names))
	}

	for _, p := range Procs() {
		if got := tab.Addr(p); got != sentinel(p) {
			t.Errorf("%s = %#x, want %#x", p, got, sentinel(p))
		}
	}
}

func TestLoadFrom(t *testing.T) {
	tab, err := LoadFrom(identity, nil, WithStrict(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tab.Complete() {
		t.Errorf("missing procs: %v", tab.Missing())
	}

	tab, err = LoadFrom(nil, nil)
	if !errors.Is(err, ErrNilLoadFunc) {
		t.Errorf("error = %v, want %v", err, ErrNilLoadFunc)
	}
	if tab == nil || len(tab.Resolved()) != 0 {
		t.Error("expected an empty table after a nil resolver load")
	}
}

func TestStrictDefault(t *testing.T) {
	if got := New().Strict(); got != defaultStrict {
		t.Errorf("Strict() = %t, want build default %t", got, defaultStrict)
	}
	if !New(WithStrict(true)).Strict() {
		t.Error("WithStrict(true) not applied")
	}
}
