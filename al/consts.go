package al

// Boolean values.
const (
	False = 0
	True  = 1
	None  = 0
)

// Buffer formats.
const (
	FormatMono8    = 0x1100
	FormatMono16   = 0x1101
	FormatStereo8  = 0x1102
	FormatStereo16 = 0x1103
)

// Source and listener parameters.
const (
	SourceRelative   = 0x202
	ConeInnerAngle   = 0x1001
	ConeOuterAngle   = 0x1002
	Pitch            = 0x1003
	Position         = 0x1004
	Direction        = 0x1005
	Velocity         = 0x1006
	Looping          = 0x1007
	Buffer           = 0x1009
	Gain             = 0x100A
	MinGain          = 0x100D
	MaxGain          = 0x100E
	Orientation      = 0x100F
	SourceState      = 0x1010
	BuffersQueued    = 0x1015
	BuffersProcessed = 0x1016
	SecOffset        = 0x1024
	SampleOffset     = 0x1025
	ByteOffset       = 0x1026
	SourceType       = 0x1027
)

// Source states.
const (
	Initial = 0x1011
	Playing = 0x1012
	Paused  = 0x1013
	Stopped = 0x1014
)

// Buffer parameters.
const (
	Frequency = 0x2001
	Bits      = 0x2002
	Channels  = 0x2003
	Size      = 0x2004
)

// Context strings.
const (
	Vendor     = 0xB001
	Version    = 0xB002
	Renderer   = 0xB003
	Extensions = 0xB004
)

// Error codes returned by AL.GetError.
const (
	NoError          = 0
	InvalidName      = 0xA001
	InvalidEnum      = 0xA002
	InvalidValue     = 0xA003
	InvalidOperation = 0xA004
	OutOfMemory      = 0xA005
)

// ALC parameters.
const (
	ALCFrequency                     = 0x1007
	ALCRefresh                       = 0x1008
	ALCSync                          = 0x1009
	ALCMonoSources                   = 0x1010
	ALCStereoSources                 = 0x1011
	ALCMajorVersion                  = 0x1000
	ALCMinorVersion                  = 0x1001
	ALCAttributesSize                = 0x1002
	ALCAllAttributes                 = 0x1003
	ALCDefaultDeviceSpecifier        = 0x1004
	ALCDeviceSpecifier               = 0x1005
	ALCExtensions                    = 0x1006
	ALCDefaultAllDevicesSpecifier    = 0x1012
	ALCAllDevicesSpecifier           = 0x1013
	ALCCaptureDeviceSpecifier        = 0x0310
	ALCCaptureDefaultDeviceSpecifier = 0x0311
	ALCCaptureSamples                = 0x0312
)

// ALC error codes returned by ALC.GetError.
const (
	ALCNoError        = 0
	ALCInvalidDevice  = 0xA001
	ALCInvalidContext = 0xA002
	ALCInvalidEnum    = 0xA003
	ALCInvalidValue   = 0xA004
	ALCOutOfMemory    = 0xA005
)

// ExtEFX is the device extension advertising the EFX entry points.
const ExtEFX = "ALC_EXT_EFX"

// EFX device attributes.
const (
	EFXMajorVersion   = 0x20001
	EFXMinorVersion   = 0x20002
	MaxAuxiliarySends = 0x20003
)

// EFX source parameters.
const (
	DirectFilter        = 0x20005
	AuxiliarySendFilter = 0x20006
	AirAbsorptionFactor = 0x20007
	ConeOuterGainHF     = 0x20009
)

// Effect types and parameters.
const (
	EffectType       = 0x8001
	EffectNull       = 0x0000
	EffectReverb     = 0x0001
	EffectChorus     = 0x0002
	EffectDistortion = 0x0003
	EffectEcho       = 0x0004
	EffectFlanger    = 0x0005

	EchoDelay    = 0x0001
	EchoLRDelay  = 0x0002
	EchoDamping  = 0x0003
	EchoFeedback = 0x0004
	EchoSpread   = 0x0005
)

// Filter types and parameters.
const (
	FilterType     = 0x8001
	FilterNull     = 0x0000
	FilterLowpass  = 0x0001
	FilterHighpass = 0x0002
	FilterBandpass = 0x0003

	LowpassGain    = 0x0001
	LowpassGainHF  = 0x0002
	HighpassGain   = 0x0001
	HighpassGainLF = 0x0002
	BandpassGain   = 0x0001
	BandpassGainLF = 0x0002
	BandpassGainHF = 0x0003
)
