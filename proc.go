package salad

import "strconv"

//go:generate go run ./tools/generate -symbols symbols.toml -output procs_gen.go

// Proc identifies one OpenAL entry point known to the loader.
type Proc int

// String returns the exported symbol name, e.g. "alGenBuffers".
func (p Proc) String() string {
	if !p.valid() {
		return "Proc(" + strconv.Itoa(int(p)) + ")"
	}
	return procNames[p]
}

// Group returns the group p belongs to.
func (p Proc) Group() Group {
	for g := Group(0); g < numGroups; g++ {
		if p >= groupBounds[g][0] && p < groupBounds[g][1] {
			return g
		}
	}
	return numGroups
}

// Required reports whether strict loading fails when p is missing.
func (p Proc) Required() bool {
	return p.Group().Required()
}

func (p Proc) valid() bool {
	return p >= 0 && p < numProcs
}

// Group is a block of entry points declared by one OpenAL header.
type Group int

type groupMeta struct {
	name      string
	header    string
	extension string
	required  bool
}

func (g Group) String() string {
	if !g.valid() {
		return "Group(" + strconv.Itoa(int(g)) + ")"
	}
	return groupInfo[g].name
}

// Required reports whether every proc of g must resolve in strict mode.
// Extension groups are never required; checking for the extension is left
// to the caller.
func (g Group) Required() bool {
	return g.valid() && groupInfo[g].required
}

// Extension returns the extension string advertising g, or "" for groups
// that are part of the base API.
func (g Group) Extension() string {
	if !g.valid() {
		return ""
	}
	return groupInfo[g].extension
}

// Header returns the C header declaring the group.
func (g Group) Header() string {
	if !g.valid() {
		return ""
	}
	return groupInfo[g].header
}

// Procs returns the procs of g in resolution order.
func (g Group) Procs() []Proc {
	if !g.valid() {
		return nil
	}
	procs := make([]Proc, 0, groupBounds[g][1]-groupBounds[g][0])
	for p := groupBounds[g][0]; p < groupBounds[g][1]; p++ {
		procs = append(procs, p)
	}
	return procs
}

func (g Group) valid() bool {
	return g >= 0 && g < numGroups
}

// Groups returns every symbol group in resolution order.
func Groups() []Group {
	groups := make([]Group, numGroups)
	for i := range groups {
		groups[i] = Group(i)
	}
	return groups
}

// Procs returns every known proc in resolution order.
func Procs() []Proc {
	procs := make([]Proc, numProcs)
	for i := range procs {
		procs[i] = Proc(i)
	}
	return procs
}

var procsByName = func() map[string]Proc {
	m := make(map[string]Proc, numProcs)
	for p, name := range procNames {
		m[name] = Proc(p)
	}
	return m
}()

// ProcByName returns the proc exported under name.
func ProcByName(name string) (Proc, bool) {
	p, ok := procsByName[name]
	return p, ok
}
