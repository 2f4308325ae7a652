//go:build darwin || linux || freebsd

package ffi

import (
	"github.com/ebitengine/purego"
)

// openLibrary loads a dynamic library on Unix-like systems.
// RTLD_LAZY defers binding until a function is first called.
func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY)
}

// getSymbol retrieves a symbol from the loaded library
func getSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func registerFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
