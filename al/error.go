package al

import "fmt"

// Error is an error code reported by AL.GetError.
type Error int32

func (e Error) Error() string {
	switch e {
	case NoError:
		return "no error"
	case InvalidName:
		return "invalid name"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case InvalidOperation:
		return "invalid operation"
	case OutOfMemory:
		return "out of memory"
	default:
		return fmt.Sprintf("AL error %#x", int32(e))
	}
}

// DeviceError is an error code reported by ALC.GetError.
type DeviceError int32

func (e DeviceError) Error() string {
	switch e {
	case ALCNoError:
		return "no error"
	case ALCInvalidDevice:
		return "invalid device"
	case ALCInvalidContext:
		return "invalid context"
	case ALCInvalidEnum:
		return "invalid enum"
	case ALCInvalidValue:
		return "invalid value"
	case ALCOutOfMemory:
		return "out of memory"
	default:
		return fmt.Sprintf("ALC error %#x", int32(e))
	}
}

// Err returns the pending AL error of the current context, or nil.
func (a *API) Err() error {
	if a.AL.GetError == nil {
		return nil
	}
	if code := a.AL.GetError(); code != NoError {
		return Error(code)
	}
	return nil
}

// DeviceErr returns the pending ALC error of device, or nil.
func (a *API) DeviceErr(device Device) error {
	if a.ALC.GetError == nil {
		return nil
	}
	if code := a.ALC.GetError(device); code != ALCNoError {
		return DeviceError(code)
	}
	return nil
}
