package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/chessdroid108/TagArena/event"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager synthesizes a short tone per game event. It implements
// event.Sink so the simulation never imports this package.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences and detaches all streamers
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles playback without touching the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Emit plays the tone mapped to the event type
func (sm *SoundManager) Emit(ev event.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := streamerFor(ev)
	if s == nil {
		return
	}
	sm.mixer.Add(s)
}

func streamerFor(ev event.Event) beep.Streamer {
	ms := time.Millisecond
	switch ev.Type {
	case event.TypeJump:
		freq := 320.0
		if p, ok := ev.Payload.(*event.JumpPayload); ok && p.AirJump {
			freq = 420.0
		}
		return tone(freq, 600, WaveSquare, 90*ms, 0.25)
	case event.TypeLand:
		gain := 0.2
		if p, ok := ev.Payload.(*event.LandPayload); ok {
			gain *= p.Impact
		}
		return tone(140, -80, WaveSine, 70*ms, gain)
	case event.TypeFootstep:
		return tone(100, 0, WaveSine, 30*ms, 0.08)
	case event.TypeTag:
		return beep.Seq(
			tone(523, 0, WaveSquare, 80*ms, 0.3),
			tone(784, 0, WaveSquare, 120*ms, 0.3),
		)
	case event.TypeDamage:
		return tone(110, -40, WaveSaw, 150*ms, 0.3)
	case event.TypeDied:
		return tone(330, -250, WaveSaw, 500*ms, 0.3)
	case event.TypeRespawn:
		return tone(440, 300, WaveSine, 200*ms, 0.25)
	case event.TypePowerUpSpawned:
		return tone(880, 0, WaveSine, 80*ms, 0.15)
	case event.TypePowerUpCollected:
		return beep.Seq(
			tone(659, 0, WaveSine, 60*ms, 0.3),
			tone(988, 0, WaveSine, 100*ms, 0.3),
		)
	case event.TypePowerUpExpired:
		return tone(494, -150, WaveSine, 120*ms, 0.15)
	case event.TypeObstacleHit:
		return tone(180, 0, WaveSquare, 60*ms, 0.2)
	case event.TypeBounce:
		return tone(260, 500, WaveSine, 150*ms, 0.25)
	case event.TypeGameOver:
		return beep.Seq(
			tone(523, 0, WaveSquare, 150*ms, 0.3),
			tone(659, 0, WaveSquare, 150*ms, 0.3),
			tone(784, 0, WaveSquare, 300*ms, 0.3),
		)
	}
	return nil
}
