package salad

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZeroTable(t *testing.T) {
	var tab Table
	if got := tab.Resolved(); len(got) != 0 {
		t.Errorf("zero table has resolved procs: %v", got)
	}
	if got := tab.Missing(); len(got) != int(numProcs) {
		t.Errorf("len(Missing()) = %d, want %d", len(got), numProcs)
	}
	if tab.Complete(GroupEFX) {
		t.Error("zero table reports EFX complete")
	}
	if !tab.Complete(Group(9)) {
		t.Error("unknown group should have nothing missing")
	}
}

func TestNilTable(t *testing.T) {
	var tab *Table
	if tab.Addr(AlEnable) != 0 || tab.Has(AlEnable) {
		t.Error("nil table reports an address")
	}
	if addr, ok := tab.Lookup("alEnable"); addr != 0 || !ok {
		t.Errorf("Lookup = %#x, %t, want 0, true", addr, ok)
	}
}

func TestTableLookup(t *testing.T) {
	var tab Table
	tab.set(AlcMakeContextCurrent, 0x4000)

	tests := []struct {
		name  string
		addr  uintptr
		known bool
	}{
		{"alcMakeContextCurrent", 0x4000, true},
		{"alcOpenDevice", 0, true},
		{"alcFrobnicate", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, ok := tab.Lookup(tt.name)
			if addr != tt.addr || ok != tt.known {
				t.Errorf("Lookup(%q) = %#x, %t, want %#x, %t", tt.name, addr, ok, tt.addr, tt.known)
			}
		})
	}

	if got := tab.Addr(Proc(-3)); got != 0 {
		t.Errorf("Addr(invalid) = %#x", got)
	}
}

func TestTableFilter(t *testing.T) {
	var tab Table
	tab.set(AlGenFilters, 1)
	tab.set(AlBuffer3f, 2)
	tab.set(AlcCaptureStop, 3)

	if got, want := tab.Resolved(), []Proc{AlBuffer3f, AlcCaptureStop, AlGenFilters}; !cmp.Equal(got, want) {
		t.Errorf("Resolved():\n%s", cmp.Diff(want, got))
	}
	if got, want := tab.Resolved(GroupEFX, GroupCore), []Proc{AlGenFilters, AlBuffer3f}; !cmp.Equal(got, want) {
		t.Errorf("Resolved(efx, core):\n%s", cmp.Diff(want, got))
	}

	missing := tab.Missing(GroupContext)
	if len(missing) != len(GroupContext.Procs())-1 {
		t.Errorf("len(Missing(context)) = %d", len(missing))
	}
	for _, p := range missing {
		if p == AlcCaptureStop {
			t.Error("resolved proc reported missing")
		}
	}
}
