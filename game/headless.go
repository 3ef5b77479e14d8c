package game

import "log/slog"

// Result summarizes a headless run.
type Result struct {
	Ticks    int
	Elapsed  float64
	Kills    int
	Level    int
	Survived bool
}

// RunHeadless steps the game at a fixed dt until game over or maxTicks.
// A nil autopilot leaves the player standing still. maxTicks <= 0 runs
// until game over.
func RunHeadless(g *Game, ap *Autopilot, dt float64, maxTicks int) Result {
	for maxTicks <= 0 || g.tick < maxTicks {
		if g.gameOver {
			break
		}
		if ap != nil {
			ap.Drive(g)
		} else if g.AwaitingSelection() {
			g.Select(0)
		}
		g.Step(dt)
		g.DrainEvents()
		if g.tick > 0 && g.tick%3600 == 0 && g.opts.LogStats {
			slog.Info("progress", "tick", g.tick, "elapsed", g.arena.Elapsed, "kills", g.kills, "level", g.arena.Player.Level)
		}
	}
	return Result{
		Ticks:    g.tick,
		Elapsed:  g.arena.Elapsed,
		Kills:    g.kills,
		Level:    g.arena.Player.Level,
		Survived: !g.gameOver,
	}
}
