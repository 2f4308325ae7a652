// Package playback plays looping PCM buffers on the default OpenAL device.
// It backs the example programs.
package playback

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/agiangrant/salad/al"
)

// ErrNoEFX is returned by Lowpass when the library lacks the EFX entry
// points.
var ErrNoEFX = errors.New("EFX extension not available")

// ErrIncomplete is returned by Open when an entry point the player calls
// did not resolve.
var ErrIncomplete = errors.New("entry points not resolved")

// Player owns a device, a context and at most one looping source.
type Player struct {
	api *al.API
	dev al.Device
	ctx al.Context

	buffer uint32
	source uint32
	filter uint32
}

// Open opens the default device and makes a new context on it current. It
// fails with ErrIncomplete, before touching any device, when api lacks an
// entry point the player needs.
func Open(api *al.API) (*Player, error) {
	if missing := unresolved(api); len(missing) != 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	alc := api.ALC

	dev := alc.OpenDevice(nil)
	if dev == 0 {
		return nil, errors.New("failed to open the default device")
	}
	ctx := alc.CreateContext(dev, nil)
	if ctx == 0 {
		err := api.DeviceErr(dev)
		alc.CloseDevice(dev)
		if err == nil {
			return nil, errors.New("failed to create context")
		}
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	if !alc.MakeContextCurrent(ctx) {
		alc.DestroyContext(ctx)
		alc.CloseDevice(dev)
		return nil, errors.New("failed to make context current")
	}
	return &Player{api: api, dev: dev, ctx: ctx}, nil
}

// unresolved names the entry points Open, Loop and Close call that are nil.
func unresolved(api *al.API) []string {
	a, alc := api.AL, api.ALC
	procs := []struct {
		name string
		ok   bool
	}{
		{"alGenBuffers", a.GenBuffers != nil},
		{"alBufferData", a.BufferData != nil},
		{"alDeleteBuffers", a.DeleteBuffers != nil},
		{"alGenSources", a.GenSources != nil},
		{"alSourcei", a.Sourcei != nil},
		{"alSourcePlay", a.SourcePlay != nil},
		{"alSourceStop", a.SourceStop != nil},
		{"alDeleteSources", a.DeleteSources != nil},
		{"alcOpenDevice", alc.OpenDevice != nil},
		{"alcCreateContext", alc.CreateContext != nil},
		{"alcMakeContextCurrent", alc.MakeContextCurrent != nil},
		{"alcDestroyContext", alc.DestroyContext != nil},
		{"alcCloseDevice", alc.CloseDevice != nil},
	}
	var missing []string
	for _, p := range procs {
		if !p.ok {
			missing = append(missing, p.name)
		}
	}
	return missing
}

// Device returns the device the player opened.
func (p *Player) Device() al.Device {
	return p.dev
}

// Loop uploads samples as one buffer and plays it on repeat.
func (p *Player) Loop(format int32, samples []int16, rate int32) error {
	if len(samples) == 0 {
		return errors.New("no samples")
	}
	if p.source != 0 {
		return errors.New("already playing")
	}

	a := p.api.AL
	a.GenBuffers(1, &p.buffer)
	a.BufferData(p.buffer, format, unsafe.Pointer(&samples[0]), int32(len(samples)*2), rate)
	if err := p.api.Err(); err != nil {
		return fmt.Errorf("failed to fill buffer: %w", err)
	}

	a.GenSources(1, &p.source)
	a.Sourcei(p.source, al.Buffer, int32(p.buffer))
	a.Sourcei(p.source, al.Looping, al.True)
	a.SourcePlay(p.source)
	if err := p.api.Err(); err != nil {
		return fmt.Errorf("failed to start source: %w", err)
	}
	return nil
}

// Lowpass attaches a low-pass direct filter to the playing source. gainHF
// is the high-frequency gain in [0, 1].
func (p *Player) Lowpass(gainHF float32) error {
	efx := p.api.EFX
	if efx.GenFilters == nil || efx.DeleteFilters == nil || efx.Filteri == nil || efx.Filterf == nil {
		return ErrNoEFX
	}
	if p.source == 0 {
		return errors.New("not playing")
	}
	if gainHF < 0 || gainHF > 1 {
		return fmt.Errorf("high-frequency gain %v out of range [0, 1]", gainHF)
	}

	if p.filter == 0 {
		efx.GenFilters(1, &p.filter)
		efx.Filteri(p.filter, al.FilterType, al.FilterLowpass)
	}
	efx.Filterf(p.filter, al.LowpassGain, 1)
	efx.Filterf(p.filter, al.LowpassGainHF, gainHF)
	p.api.AL.Sourcei(p.source, al.DirectFilter, int32(p.filter))
	if err := p.api.Err(); err != nil {
		return fmt.Errorf("failed to apply filter: %w", err)
	}
	return nil
}

// Close stops playback and releases everything the player created, the
// device last.
func (p *Player) Close() error {
	a := p.api.AL
	if p.source != 0 {
		a.SourceStop(p.source)
		a.DeleteSources(1, &p.source)
		p.source = 0
	}
	if p.filter != 0 {
		p.api.EFX.DeleteFilters(1, &p.filter)
		p.filter = 0
	}
	if p.buffer != 0 {
		a.DeleteBuffers(1, &p.buffer)
		p.buffer = 0
	}
	err := p.api.Err()

	alc := p.api.ALC
	alc.MakeContextCurrent(0)
	alc.DestroyContext(p.ctx)
	if !alc.CloseDevice(p.dev) {
		err = errors.Join(err, errors.New("failed to close device"))
	}
	return err
}
