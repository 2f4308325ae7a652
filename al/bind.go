package al

import "github.com/agiangrant/salad"

type binding struct {
	proc salad.Proc
	fn   any
}

// bindings pairs every proc with the func field it is registered into.
func (a *API) bindings() []binding {
	return []binding{
		{salad.AlBuffer3f, &a.AL.Buffer3f},
		{salad.AlBuffer3i, &a.AL.Buffer3i},
		{salad.AlBufferData, &a.AL.BufferData},
		{salad.AlBufferf, &a.AL.Bufferf},
		{salad.AlBufferfv, &a.AL.Bufferfv},
		{salad.AlBufferi, &a.AL.Bufferi},
		{salad.AlBufferiv, &a.AL.Bufferiv},
		{salad.AlDeleteBuffers, &a.AL.DeleteBuffers},
		{salad.AlDeleteSources, &a.AL.DeleteSources},
		{salad.AlDisable, &a.AL.Disable},
		{salad.AlEnable, &a.AL.Enable},
		{salad.AlGenBuffers, &a.AL.GenBuffers},
		{salad.AlGenSources, &a.AL.GenSources},
		{salad.AlGetBoolean, &a.AL.GetBoolean},
		{salad.AlGetBooleanv, &a.AL.GetBooleanv},
		{salad.AlGetBuffer3f, &a.AL.GetBuffer3f},
		{salad.AlGetBuffer3i, &a.AL.GetBuffer3i},
		{salad.AlGetBufferf, &a.AL.GetBufferf},
		{salad.AlGetBufferfv, &a.AL.GetBufferfv},
		{salad.AlGetBufferi, &a.AL.GetBufferi},
		{salad.AlGetBufferiv, &a.AL.GetBufferiv},
		{salad.AlGetDouble, &a.AL.GetDouble},
		{salad.AlGetDoublev, &a.AL.GetDoublev},
		{salad.AlGetEnumValue, &a.AL.GetEnumValue},
		{salad.AlGetError, &a.AL.GetError},
		{salad.AlGetFloat, &a.AL.GetFloat},
		{salad.AlGetFloatv, &a.AL.GetFloatv},
		{salad.AlGetInteger, &a.AL.GetInteger},
		{salad.AlGetIntegerv, &a.AL.GetIntegerv},
		{salad.AlGetListener3f, &a.AL.GetListener3f},
		{salad.AlGetListener3i, &a.AL.GetListener3i},
		{salad.AlGetListenerf, &a.AL.GetListenerf},
		{salad.AlGetListenerfv, &a.AL.GetListenerfv},
		{salad.AlGetListeneri, &a.AL.GetListeneri},
		{salad.AlGetListeneriv, &a.AL.GetListeneriv},
		{salad.AlGetProcAddress, &a.AL.GetProcAddress},
		{salad.AlGetSource3f, &a.AL.GetSource3f},
		{salad.AlGetSource3i, &a.AL.GetSource3i},
		{salad.AlGetSourcef, &a.AL.GetSourcef},
		{salad.AlGetSourcefv, &a.AL.GetSourcefv},
		{salad.AlGetSourcei, &a.AL.GetSourcei},
		{salad.AlGetSourceiv, &a.AL.GetSourceiv},
		{salad.AlGetString, &a.AL.GetString},
		{salad.AlIsBuffer, &a.AL.IsBuffer},
		{salad.AlIsEnabled, &a.AL.IsEnabled},
		{salad.AlIsExtensionPresent, &a.AL.IsExtensionPresent},
		{salad.AlIsSource, &a.AL.IsSource},
		{salad.AlListener3f, &a.AL.Listener3f},
		{salad.AlListener3i, &a.AL.Listener3i},
		{salad.AlListenerf, &a.AL.Listenerf},
		{salad.AlListenerfv, &a.AL.Listenerfv},
		{salad.AlListeneri, &a.AL.Listeneri},
		{salad.AlListeneriv, &a.AL.Listeneriv},
		{salad.AlSource3f, &a.AL.Source3f},
		{salad.AlSource3i, &a.AL.Source3i},
		{salad.AlSourcef, &a.AL.Sourcef},
		{salad.AlSourcefv, &a.AL.Sourcefv},
		{salad.AlSourcei, &a.AL.Sourcei},
		{salad.AlSourceiv, &a.AL.Sourceiv},
		{salad.AlSourcePause, &a.AL.SourcePause},
		{salad.AlSourcePausev, &a.AL.SourcePausev},
		{salad.AlSourcePlay, &a.AL.SourcePlay},
		{salad.AlSourcePlayv, &a.AL.SourcePlayv},
		{salad.AlSourceQueueBuffers, &a.AL.SourceQueueBuffers},
		{salad.AlSourceRewind, &a.AL.SourceRewind},
		{salad.AlSourceRewindv, &a.AL.SourceRewindv},
		{salad.AlSourceStop, &a.AL.SourceStop},
		{salad.AlSourceStopv, &a.AL.SourceStopv},
		{salad.AlSourceUnqueueBuffers, &a.AL.SourceUnqueueBuffers},
		{salad.AlcCaptureCloseDevice, &a.ALC.CaptureCloseDevice},
		{salad.AlcCaptureOpenDevice, &a.ALC.CaptureOpenDevice},
		{salad.AlcCaptureSamples, &a.ALC.CaptureSamples},
		{salad.AlcCaptureStart, &a.ALC.CaptureStart},
		{salad.AlcCaptureStop, &a.ALC.CaptureStop},
		{salad.AlcCloseDevice, &a.ALC.CloseDevice},
		{salad.AlcCreateContext, &a.ALC.CreateContext},
		{salad.AlcDestroyContext, &a.ALC.DestroyContext},
		{salad.AlcGetContextsDevice, &a.ALC.GetContextsDevice},
		{salad.AlcGetCurrentContext, &a.ALC.GetCurrentContext},
		{salad.AlcGetEnumValue, &a.ALC.GetEnumValue},
		{salad.AlcGetError, &a.ALC.GetError},
		{salad.AlcGetIntegerv, &a.ALC.GetIntegerv},
		{salad.AlcGetProcAddress, &a.ALC.GetProcAddress},
		{salad.AlcGetString, &a.ALC.GetString},
		{salad.AlcIsExtensionPresent, &a.ALC.IsExtensionPresent},
		{salad.AlcMakeContextCurrent, &a.ALC.MakeContextCurrent},
		{salad.AlcOpenDevice, &a.ALC.OpenDevice},
		{salad.AlcProcessContext, &a.ALC.ProcessContext},
		{salad.AlcSuspendContext, &a.ALC.SuspendContext},
		{salad.AlDeleteEffects, &a.EFX.DeleteEffects},
		{salad.AlDeleteFilters, &a.EFX.DeleteFilters},
		{salad.AlEffectf, &a.EFX.Effectf},
		{salad.AlEffectfv, &a.EFX.Effectfv},
		{salad.AlEffecti, &a.EFX.Effecti},
		{salad.AlEffectiv, &a.EFX.Effectiv},
		{salad.AlFilterf, &a.EFX.Filterf},
		{salad.AlFilterfv, &a.EFX.Filterfv},
		{salad.AlFilteri, &a.EFX.Filteri},
		{salad.AlFilteriv, &a.EFX.Filteriv},
		{salad.AlGenEffects, &a.EFX.GenEffects},
		{salad.AlGenFilters, &a.EFX.GenFilters},
		{salad.AlGetEffectf, &a.EFX.GetEffectf},
		{salad.AlGetEffectfv, &a.EFX.GetEffectfv},
		{salad.AlGetEffecti, &a.EFX.GetEffecti},
		{salad.AlGetEffectiv, &a.EFX.GetEffectiv},
		{salad.AlGetFilterf, &a.EFX.GetFilterf},
		{salad.AlGetFilterfv, &a.EFX.GetFilterfv},
		{salad.AlGetFilteri, &a.EFX.GetFilteri},
		{salad.AlGetFilteriv, &a.EFX.GetFilteriv},
		{salad.AlIsEffect, &a.EFX.IsEffect},
		{salad.AlIsFilter, &a.EFX.IsFilter},
	}
}
