package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-duration raw wave
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second added to freq over the tone
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		f := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
	gain           float64
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, gain float64, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
		gain:           gain,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := e.gain
		if e.position < e.attackSamples {
			vol *= float64(e.position) / float64(e.attackSamples)
		} else if rem := e.totalSamples - e.position; rem < e.releaseSamples {
			vol *= float64(rem) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone builds a shaped one-shot streamer at the package sample rate
func tone(freq, sweep float64, wave WaveType, duration time.Duration, gain float64) beep.Streamer {
	osc := newOscillator(freq, sweep, duration, wave, sampleRate)
	return newEnvelope(osc, duration, duration/10, duration/3, gain, sampleRate)
}
