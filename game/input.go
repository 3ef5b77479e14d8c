package game

import "gonum.org/v1/gonum/spatial/r2"

// Input is one frame of front-end input, already decoded from keys.
type Input struct {
	Up, Down, Left, Right bool

	Select  int // Offer index, or -1
	Pause   bool
	Restart bool
}

// NoInput is an Input with nothing pressed.
var NoInput = Input{Select: -1}

// Direction converts held keys into a unit movement vector, or zero.
func (in Input) Direction() r2.Vec {
	var d r2.Vec
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if d.X != 0 && d.Y != 0 {
		return r2.Unit(d)
	}
	return d
}

// Apply feeds input to the session. Restart only works after game over.
func (g *Game) Apply(in Input) {
	if in.Restart && g.gameOver {
		g.Restart()
		return
	}
	if in.Pause {
		g.TogglePause()
	}
	if in.Select >= 0 {
		g.Select(in.Select)
	}
	g.SetMoveDirection(in.Direction())
}
