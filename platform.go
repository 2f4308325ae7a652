package salad

import "runtime"

// Platform represents the current operating system/platform
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformLinux   Platform = "linux"
	PlatformFreeBSD Platform = "freebsd"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "js"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the program was built for
func CurrentPlatform() Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformMacOS
	case "ios":
		return PlatformIOS
	case "android":
		return PlatformAndroid
	case "linux":
		return PlatformLinux
	case "freebsd":
		return PlatformFreeBSD
	case "windows":
		return PlatformWindows
	case "js":
		return PlatformWeb
	default:
		return PlatformUnknown
	}
}

// Linkage names the dynamic-linking convention of a platform.
type Linkage int

const (
	LinkageNone Linkage = iota
	LinkageELF          // dlopen, shared objects
	LinkageMachO        // dlopen, dylibs and frameworks
	LinkagePE           // LoadLibrary, DLLs
)

// Linkage returns the dynamic-linking convention used on p.
func (p Platform) Linkage() Linkage {
	switch p {
	case PlatformLinux, PlatformAndroid, PlatformFreeBSD:
		return LinkageELF
	case PlatformMacOS, PlatformIOS:
		return LinkageMachO
	case PlatformWindows:
		return LinkagePE
	default:
		return LinkageNone
	}
}

// LibraryNames returns the OpenAL library names probed on p, in order.
// The first name that opens wins.
func LibraryNames(p Platform) []string {
	var names []string
	switch p.Linkage() {
	case LinkageELF:
		names = []string{"libopenal.so.1", "libopenal.so"}
	case LinkageMachO:
		names = []string{
			"libopenal.dylib",
			"libopenal.1.dylib",
			"/System/Library/Frameworks/OpenAL.framework/OpenAL",
		}
	case LinkagePE:
		// soft_oal.dll is how OpenAL Soft ships when it must not shadow
		// the system router.
		names = []string{"openal32.dll", "soft_oal.dll"}
	}
	return names
}
