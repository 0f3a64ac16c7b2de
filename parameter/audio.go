package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Launch whoosh
const (
	LaunchSoundDuration = 600 * time.Millisecond
	LaunchFreqStart     = 180.0
	LaunchFreqEnd       = 900.0
	LaunchAmplitude     = 0.25
)

// Ground impact thud
const (
	ImpactSoundDuration = 300 * time.Millisecond
	ImpactFreq          = 70.0
	ImpactAmplitude     = 0.35
	ImpactDecayRate     = 9.0
)

// DefaultMasterVolume in [0,1]
const DefaultMasterVolume = 0.8
