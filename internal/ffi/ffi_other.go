//go:build !(darwin || linux || freebsd || windows)

package ffi

func openLibrary(name string) (uintptr, error) {
	return 0, ErrUnsupported
}

func getSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupported
}

// registerFunc leaves fptr nil; there is no way to call native code here.
func registerFunc(fptr any, addr uintptr) {}
