// Package ffi wraps the host dynamic linker.
// On Unix-like systems it uses purego's dlopen/dlsym, so no cgo is needed and
// the module cross-compiles; on Windows it uses LoadLibrary/GetProcAddress.
package ffi

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupported is returned on platforms without a dynamic linker.
var ErrUnsupported = errors.New("dynamic linking not supported on this platform")

// System is the host dynamic linker. Libraries it opens are never closed.
type System struct{}

// Open loads the named library, letting the host linker search its usual
// paths for bare names.
func (System) Open(name string) (uintptr, error) {
	if name == "" {
		return 0, errors.New("empty library name")
	}
	h, err := openLibrary(name)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, fmt.Errorf("%s: null module handle", name)
	}
	return h, nil
}

// Symbol returns the address of name within the library handle.
func (System) Symbol(handle uintptr, name string) (uintptr, error) {
	if handle == 0 {
		return 0, errors.New("null module handle")
	}
	return getSymbol(handle, name)
}

// RegisterFunc makes the Go function pointed to by fptr call the native
// function at addr. A zero addr leaves *fptr unchanged.
func RegisterFunc(fptr any, addr uintptr) {
	if addr == 0 {
		return
	}
	if v := reflect.ValueOf(fptr); v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Func {
		panic(fmt.Sprintf("ffi: RegisterFunc needs a pointer to a func, got %T", fptr))
	}
	registerFunc(fptr, addr)
}
