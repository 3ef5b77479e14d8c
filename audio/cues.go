package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/ratato/telemetry"
)

// Cue describes one synthesized sound.
type Cue struct {
	Freq, End float64 // Start and end pitch in Hz
	Duration  time.Duration
	Wave      Wave
	Gain      float64       // log2 gain relative to the master volume
	Throttle  time.Duration // Minimum spacing between plays
}

// cues maps events to sounds. Events without an entry are silent.
var cues = map[telemetry.EventType]Cue{
	telemetry.EventEnemyHit:    {Freq: 520, End: 420, Duration: 40 * time.Millisecond, Wave: WaveSquare, Gain: -3, Throttle: 60 * time.Millisecond},
	telemetry.EventKill:        {Freq: 300, End: 120, Duration: 90 * time.Millisecond, Wave: WaveSaw, Gain: -2, Throttle: 50 * time.Millisecond},
	telemetry.EventPlayerHit:   {Freq: 140, End: 90, Duration: 120 * time.Millisecond, Wave: WaveSaw, Gain: -1, Throttle: 150 * time.Millisecond},
	telemetry.EventEvade:       {Freq: 900, End: 1300, Duration: 60 * time.Millisecond, Wave: WaveSine, Gain: -2, Throttle: 150 * time.Millisecond},
	telemetry.EventPickup:      {Freq: 880, End: 1320, Duration: 70 * time.Millisecond, Wave: WaveSine, Gain: -2, Throttle: 40 * time.Millisecond},
	telemetry.EventLevelUp:     {Freq: 660, End: 1320, Duration: 350 * time.Millisecond, Wave: WaveSine},
	telemetry.EventBoss:        {Freq: 90, End: 60, Duration: 900 * time.Millisecond, Wave: WaveSquare, Gain: 0.5},
	telemetry.EventDetonation:  {Duration: 250 * time.Millisecond, Wave: WaveNoise, Gain: -0.5, Throttle: 100 * time.Millisecond},
	telemetry.EventEvolve:      {Freq: 440, End: 1760, Duration: 600 * time.Millisecond, Wave: WaveSine, Gain: 0.5},
	telemetry.EventEnvironment: {Freq: 220, End: 330, Duration: 400 * time.Millisecond, Wave: WaveSine, Gain: -1},
	telemetry.EventGameOver:    {Freq: 440, End: 110, Duration: 1200 * time.Millisecond, Wave: WaveSaw},
}

// CueFor returns the cue for an event type.
func CueFor(t telemetry.EventType) (Cue, bool) {
	c, ok := cues[t]
	return c, ok
}

// Streamer renders the cue at the given sample rate and master gain.
func (c Cue) Streamer(rate beep.SampleRate, master float64) beep.Streamer {
	attack := min(10*time.Millisecond, c.Duration/4)
	release := c.Duration / 2
	s := NewEnvelope(NewTone(c.Freq, c.End, c.Duration, c.Wave, rate), c.Duration, attack, release, rate)
	return withVolume(s, master+c.Gain)
}
