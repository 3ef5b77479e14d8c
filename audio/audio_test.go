package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/telemetry"
)

// drain streams s to completion and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := 50 * time.Millisecond
			got := drain(t, NewTone(440, 880, d, tc.wave, rate))
			if want := rate.N(d); got != want {
				t.Errorf("samples = %d, want %d", got, want)
			}
		})
	}
}

func TestEnvelopeSilencesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	s := NewEnvelope(NewTone(0, 0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 during attack", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("mid sample = %f, want full volume", buf[50][0])
	}
	if last := buf[n-1][0]; last > 0.2 {
		t.Errorf("last sample = %f, want faded", last)
	}
}

func TestEveryCueRenders(t *testing.T) {
	rate := beep.SampleRate(22050)
	for typ, c := range cues {
		if c.Duration <= 0 {
			t.Errorf("%s: zero duration", typ)
			continue
		}
		if n := drain(t, c.Streamer(rate, -20)); n == 0 {
			t.Errorf("%s: no samples", typ)
		}
	}
}

func TestScheduleThrottles(t *testing.T) {
	p := newPlayer(&config.AudioConfig{SampleRate: 22050})
	now := time.Now()
	hit := telemetry.Event{Type: telemetry.EventEnemyHit}
	kill := telemetry.Event{Type: telemetry.EventKill}
	env := telemetry.Event{Type: telemetry.EventType(250)}

	if got := len(p.schedule([]telemetry.Event{hit, hit, kill, env}, now)); got != 2 {
		t.Fatalf("first batch = %d streams, want 2 (deduped, unknown skipped)", got)
	}
	if got := len(p.schedule([]telemetry.Event{hit}, now.Add(10*time.Millisecond))); got != 0 {
		t.Errorf("throttled hit played %d streams", got)
	}
	if got := len(p.schedule([]telemetry.Event{hit}, now.Add(time.Second))); got != 1 {
		t.Errorf("hit after throttle = %d streams, want 1", got)
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play([]telemetry.Event{{Type: telemetry.EventKill}})
	p.Close()
}
