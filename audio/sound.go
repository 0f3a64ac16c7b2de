// Package audio plays the launch and impact sound effects through beep.
// Every operation is safe to call when the speaker is unavailable.
package audio

import (
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vinegar-rocket/parameter"
)

// SoundManager owns the speaker and the effect mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	cfg.MasterVolume = clamp01(cfg.MasterVolume)

	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  mixer,
		volume: masterVolume(mixer, cfg.MasterVolume),
	}
}

// masterVolume maps a linear gain onto beep's exponential volume control
func masterVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	if gain <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(gain)
	return v
}

// Initialize opens the speaker, a no-op when disabled or already open
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	log.Printf("audio: speaker at %d Hz, volume %.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// Enabled reports whether sounds will be heard
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences pending sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayLaunch plays the rising whoosh
func (sm *SoundManager) PlayLaunch() {
	sm.play(NewSweepGenerator(sm.rate, parameter.LaunchFreqStart, parameter.LaunchFreqEnd,
		parameter.LaunchAmplitude, parameter.LaunchSoundDuration))
}

// PlayImpact plays the landing thud
func (sm *SoundManager) PlayImpact() {
	sm.play(NewThudGenerator(sm.rate, parameter.ImpactFreq, parameter.ImpactAmplitude,
		parameter.ImpactDecayRate, parameter.ImpactSoundDuration))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
