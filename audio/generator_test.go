package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vinegar-rocket/parameter"
)

// drain streams a generator to exhaustion and returns the total sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("Sample %d out of range: %f", total+j, buf[j][0])
			}
			if buf[j][0] != buf[j][1] {
				t.Fatalf("Sample %d not mono: %f vs %f", total+j, buf[j][0], buf[j][1])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Generator never finished")
	return total
}

// TestSweepGeneratorLength verifies the whoosh ends after its duration
func TestSweepGeneratorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweepGenerator(rate, parameter.LaunchFreqStart, parameter.LaunchFreqEnd, parameter.LaunchAmplitude, 100*time.Millisecond)

	if got, want := drain(t, s), rate.N(100*time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got %v", s.Err())
	}
}

// TestThudGeneratorDecays verifies the impact sound fades toward silence
func TestThudGeneratorDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewThudGenerator(rate, parameter.ImpactFreq, parameter.ImpactAmplitude, parameter.ImpactDecayRate, parameter.ImpactSoundDuration)

	head := make([][2]float64, 1000)
	s.Stream(head)
	peakHead := 0.0
	for _, v := range head {
		peakHead = max(peakHead, abs(v[0]))
	}

	// Skip to the tail
	skip := make([][2]float64, rate.N(parameter.ImpactSoundDuration)-2000)
	s.Stream(skip)
	tail := make([][2]float64, 1000)
	s.Stream(tail)
	peakTail := 0.0
	for _, v := range tail {
		peakTail = max(peakTail, abs(v[0]))
	}

	if peakTail >= peakHead {
		t.Errorf("Expected decay, head peak %f tail peak %f", peakHead, peakTail)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
