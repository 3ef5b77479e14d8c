package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/telemetry"
)

// maxPerBatch caps how many cues one Play call may start.
const maxPerBatch = 6

// Player turns event batches into sounds on the speaker.
// A nil *Player is silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	last   map[telemetry.EventType]time.Time
}

// New initializes the speaker. Returns nil, nil when muted.
func New(cfg *config.AudioConfig, muted bool) (*Player, error) {
	if muted {
		return nil, nil
	}
	p := newPlayer(cfg)
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(cfg *config.AudioConfig) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: cfg.Volume,
		last:   make(map[telemetry.EventType]time.Time),
	}
}

// Play starts the cues for events, respecting per-cue throttles.
func (p *Player) Play(events []telemetry.Event) {
	if p == nil || len(events) == 0 {
		return
	}
	streams := p.schedule(events, time.Now())
	if len(streams) == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(streams...)
	speaker.Unlock()
}

// schedule picks the streamers to start at now.
func (p *Player) schedule(events []telemetry.Event, now time.Time) []beep.Streamer {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []beep.Streamer
	seen := make(map[telemetry.EventType]bool, 4)
	for _, ev := range events {
		if len(out) >= maxPerBatch {
			break
		}
		c, ok := CueFor(ev.Type)
		if !ok || seen[ev.Type] {
			continue
		}
		if last, ok := p.last[ev.Type]; ok && now.Sub(last) < c.Throttle {
			continue
		}
		seen[ev.Type] = true
		p.last[ev.Type] = now
		out = append(out, c.Streamer(p.rate, p.volume))
	}
	return out
}

// Close silences and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
