// Package al provides typed Go functions over the entry points of a
// loaded salad.Table.
//
// Bind turns each resolved slot into a Go func; slots that did not resolve
// stay nil. Extension functions should only be called after checking
// EFX.Present or the device's extension string.
//
// The functions call straight into the OpenAL library. Pointer arguments
// must stay valid for the duration of the call and follow the usual cgo
// pointer rules.
package al

import (
	"unsafe"

	"github.com/agiangrant/salad"
	"github.com/agiangrant/salad/internal/ffi"
)

// Device is an ALCdevice pointer.
type Device uintptr

// Context is an ALCcontext pointer.
type Context uintptr

// API holds a Go func for every entry point of a Table.
type API struct {
	AL  AL
	ALC ALC
	EFX EFX
}

// AL holds the core API declared by AL/al.h.
type AL struct {
	Buffer3f             func(buffer uint32, param int32, v1, v2, v3 float32)
	Buffer3i             func(buffer uint32, param int32, v1, v2, v3 int32)
	BufferData           func(buffer uint32, format int32, data unsafe.Pointer, size, freq int32)
	Bufferf              func(buffer uint32, param int32, value float32)
	Bufferfv             func(buffer uint32, param int32, values *float32)
	Bufferi              func(buffer uint32, param int32, value int32)
	Bufferiv             func(buffer uint32, param int32, values *int32)
	DeleteBuffers        func(n int32, buffers *uint32)
	DeleteSources        func(n int32, sources *uint32)
	Disable              func(capability int32)
	Enable               func(capability int32)
	GenBuffers           func(n int32, buffers *uint32)
	GenSources           func(n int32, sources *uint32)
	GetBoolean           func(param int32) bool
	GetBooleanv          func(param int32, values *uint8)
	GetBuffer3f          func(buffer uint32, param int32, v1, v2, v3 *float32)
	GetBuffer3i          func(buffer uint32, param int32, v1, v2, v3 *int32)
	GetBufferf           func(buffer uint32, param int32, value *float32)
	GetBufferfv          func(buffer uint32, param int32, values *float32)
	GetBufferi           func(buffer uint32, param int32, value *int32)
	GetBufferiv          func(buffer uint32, param int32, values *int32)
	GetDouble            func(param int32) float64
	GetDoublev           func(param int32, values *float64)
	GetEnumValue         func(name string) int32
	GetError             func() int32
	GetFloat             func(param int32) float32
	GetFloatv            func(param int32, values *float32)
	GetInteger           func(param int32) int32
	GetIntegerv          func(param int32, values *int32)
	GetListener3f        func(param int32, v1, v2, v3 *float32)
	GetListener3i        func(param int32, v1, v2, v3 *int32)
	GetListenerf         func(param int32, value *float32)
	GetListenerfv        func(param int32, values *float32)
	GetListeneri         func(param int32, value *int32)
	GetListeneriv        func(param int32, values *int32)
	GetProcAddress       func(name string) uintptr
	GetSource3f          func(source uint32, param int32, v1, v2, v3 *float32)
	GetSource3i          func(source uint32, param int32, v1, v2, v3 *int32)
	GetSourcef           func(source uint32, param int32, value *float32)
	GetSourcefv          func(source uint32, param int32, values *float32)
	GetSourcei           func(source uint32, param int32, value *int32)
	GetSourceiv          func(source uint32, param int32, values *int32)
	GetString            func(param int32) string
	IsBuffer             func(buffer uint32) bool
	IsEnabled            func(capability int32) bool
	IsExtensionPresent   func(name string) bool
	IsSource             func(source uint32) bool
	Listener3f           func(param int32, v1, v2, v3 float32)
	Listener3i           func(param int32, v1, v2, v3 int32)
	Listenerf            func(param int32, value float32)
	Listenerfv           func(param int32, values *float32)
	Listeneri            func(param int32, value int32)
	Listeneriv           func(param int32, values *int32)
	Source3f             func(source uint32, param int32, v1, v2, v3 float32)
	Source3i             func(source uint32, param int32, v1, v2, v3 int32)
	Sourcef              func(source uint32, param int32, value float32)
	Sourcefv             func(source uint32, param int32, values *float32)
	Sourcei              func(source uint32, param int32, value int32)
	Sourceiv             func(source uint32, param int32, values *int32)
	SourcePause          func(source uint32)
	SourcePausev         func(n int32, sources *uint32)
	SourcePlay           func(source uint32)
	SourcePlayv          func(n int32, sources *uint32)
	SourceQueueBuffers   func(source uint32, n int32, buffers *uint32)
	SourceRewind         func(source uint32)
	SourceRewindv        func(n int32, sources *uint32)
	SourceStop           func(source uint32)
	SourceStopv          func(n int32, sources *uint32)
	SourceUnqueueBuffers func(source uint32, n int32, buffers *uint32)
}

// ALC holds the context API declared by AL/alc.h.
//
// Device names are passed as *byte so nil selects the default device; use
// Str to build one from a Go string.
type ALC struct {
	CaptureCloseDevice func(device Device) bool
	CaptureOpenDevice  func(name *byte, frequency uint32, format int32, bufferSize int32) Device
	CaptureSamples     func(device Device, buffer unsafe.Pointer, samples int32)
	CaptureStart       func(device Device)
	CaptureStop        func(device Device)
	CloseDevice        func(device Device) bool
	CreateContext      func(device Device, attrs *int32) Context
	DestroyContext     func(context Context)
	GetContextsDevice  func(context Context) Device
	GetCurrentContext  func() Context
	GetEnumValue       func(device Device, name string) int32
	GetError           func(device Device) int32
	GetIntegerv        func(device Device, param int32, size int32, values *int32)
	GetProcAddress     func(device Device, name string) uintptr
	GetString          func(device Device, param int32) string
	IsExtensionPresent func(device Device, name string) bool
	MakeContextCurrent func(context Context) bool
	OpenDevice         func(name *byte) Device
	ProcessContext     func(context Context)
	SuspendContext     func(context Context)
}

// EFX holds the effects extension declared by AL/efx.h.
type EFX struct {
	DeleteEffects func(n int32, effects *uint32)
	DeleteFilters func(n int32, filters *uint32)
	Effectf       func(effect uint32, param int32, value float32)
	Effectfv      func(effect uint32, param int32, values *float32)
	Effecti       func(effect uint32, param int32, value int32)
	Effectiv      func(effect uint32, param int32, values *int32)
	Filterf       func(filter uint32, param int32, value float32)
	Filterfv      func(filter uint32, param int32, values *float32)
	Filteri       func(filter uint32, param int32, value int32)
	Filteriv      func(filter uint32, param int32, values *int32)
	GenEffects    func(n int32, effects *uint32)
	GenFilters    func(n int32, filters *uint32)
	GetEffectf    func(effect uint32, param int32, value *float32)
	GetEffectfv   func(effect uint32, param int32, values *float32)
	GetEffecti    func(effect uint32, param int32, value *int32)
	GetEffectiv   func(effect uint32, param int32, values *int32)
	GetFilterf    func(filter uint32, param int32, value *float32)
	GetFilterfv   func(filter uint32, param int32, values *float32)
	GetFilteri    func(filter uint32, param int32, value *int32)
	GetFilteriv   func(filter uint32, param int32, values *int32)
	IsEffect      func(effect uint32) bool
	IsFilter      func(filter uint32) bool

	present bool
}

// Present reports whether every EFX entry point resolved.
func (e *EFX) Present() bool {
	return e.present
}

// Bind returns the functions for every resolved slot of t.
func Bind(t *salad.Table) *API {
	api := new(API)
	for _, b := range api.bindings() {
		ffi.RegisterFunc(b.fn, t.Addr(b.proc))
	}
	api.EFX.present = t.Complete(salad.GroupEFX)
	return api
}

// Str returns s as a NUL-terminated C string.
func Str(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}
