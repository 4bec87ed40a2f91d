package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/chessdroid108/TagArena/event"
)

// drain pulls a streamer to exhaustion and returns the total sample count
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneDuration(t *testing.T) {
	d := 100 * time.Millisecond
	s := tone(440, 0, WaveSine, d, 0.5)

	got := drain(s)
	expected := sampleRate.N(d)
	if got != expected {
		t.Errorf("Expected %d samples, got %d", expected, got)
	}
}

func TestEnvelopeStaysWithinGain(t *testing.T) {
	d := 50 * time.Millisecond
	s := tone(880, 0, WaveSquare, d, 0.3)

	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := buf[i][ch]
				if v > 0.3+1e-9 || v < -0.3-1e-9 {
					t.Fatalf("Expected samples within ±0.3, got %v", v)
				}
			}
		}
		if !ok {
			return
		}
	}
}

func TestStreamerForCoversEveryEvent(t *testing.T) {
	types := []event.Type{
		event.TypeJump, event.TypeLand, event.TypeFootstep, event.TypeTag,
		event.TypeDamage, event.TypeDied, event.TypeRespawn,
		event.TypePowerUpSpawned, event.TypePowerUpCollected, event.TypePowerUpExpired,
		event.TypeObstacleHit, event.TypeBounce, event.TypeGameOver,
	}

	for _, typ := range types {
		if streamerFor(event.Event{Type: typ}) == nil {
			t.Errorf("Expected a streamer for %v", typ)
		}
	}
}

func TestAirJumpTonePitchesUp(t *testing.T) {
	ground := streamerFor(event.Event{Type: event.TypeJump, Payload: &event.JumpPayload{Player: 0}})
	air := streamerFor(event.Event{Type: event.TypeJump, Payload: &event.JumpPayload{Player: 0, AirJump: true}})
	if ground == nil || air == nil {
		t.Fatalf("Expected streamers for both jump variants")
	}
	// Same envelope, different base frequency: both drain to equal length
	if drain(ground) != drain(air) {
		t.Errorf("Expected equal tone lengths for jump variants")
	}
}

func TestUninitializedManagerIgnoresEvents(t *testing.T) {
	sm := NewSoundManager()
	// Must not panic or touch the speaker before Initialize
	sm.Emit(event.Event{Type: event.TypeTag})
	sm.Cleanup()
}
