package salad

// Table holds the resolved address of every known entry point. The zero
// value is the unloaded state: every slot is zero.
//
// A Table is written by a load and read by everything else. It has no
// locking; load once before sharing it between goroutines.
type Table struct {
	slots [numProcs]uintptr
}

// Addr returns the resolved address of p, or zero when p did not resolve
// or is not a known proc.
func (t *Table) Addr(p Proc) uintptr {
	if t == nil || !p.valid() {
		return 0
	}
	return t.slots[p]
}

// Lookup returns the resolved address of the named symbol. The boolean
// reports whether name is a symbol the loader knows about.
func (t *Table) Lookup(name string) (uintptr, bool) {
	p, ok := ProcByName(name)
	if !ok {
		return 0, false
	}
	return t.Addr(p), true
}

// Has reports whether p resolved.
func (t *Table) Has(p Proc) bool {
	return t.Addr(p) != 0
}

// Missing returns the procs of the given groups that did not resolve,
// in resolution order. With no groups it checks every group.
func (t *Table) Missing(groups ...Group) []Proc {
	return t.filter(false, groups)
}

// Resolved returns the procs of the given groups that resolved, in
// resolution order. With no groups it checks every group.
func (t *Table) Resolved(groups ...Group) []Proc {
	return t.filter(true, groups)
}

// Complete reports whether every proc of the given groups resolved.
func (t *Table) Complete(groups ...Group) bool {
	return len(t.Missing(groups...)) == 0
}

func (t *Table) filter(resolved bool, groups []Group) []Proc {
	if len(groups) == 0 {
		groups = Groups()
	}
	var procs []Proc
	for _, g := range groups {
		for _, p := range g.Procs() {
			if t.Has(p) == resolved {
				procs = append(procs, p)
			}
		}
	}
	return procs
}

func (t *Table) set(p Proc, addr uintptr) {
	t.slots[p] = addr
}
