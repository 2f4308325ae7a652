// Package salad loads OpenAL at run time.
//
// It finds the OpenAL shared library of the host, resolves every entry
// point of the core API, the context API and the ALC_EXT_EFX extension by
// name and stores the addresses in a Table. Nothing links against OpenAL at
// build time, and no cgo is needed.
//
//	t, err := salad.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	api := al.Bind(t)
//
// Callers that already have their own way of finding symbols, such as a
// plugin host, use LoadFrom with a resolver of their own instead.
//
// EFX entry points may be missing even after a successful load; check
// [Table.Has] or the extension string before calling them.
package salad

// Version is the version of the loader.
const Version = "0.1.0"

// Load returns a Table filled from the first OpenAL library of the current
// platform that opens. On failure the returned Table holds whatever was
// resolved before the failure was detected.
func Load(opts ...Option) (*Table, error) {
	t := new(Table)
	return t, New(opts...).LoadDefault(t)
}

// LoadFrom returns a Table filled by fn. arg is passed to every call of fn.
func LoadFrom(fn LoadFunc, arg any, opts ...Option) (*Table, error) {
	t := new(Table)
	return t, New(opts...).LoadFunc(t, fn, arg)
}
