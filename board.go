package main // import "github.com/tonobo/snake-top"

type Board struct {
	Height  int      `json:"height"`
	Width   int      `json:"width"`
	Food    []Point  `json:"food"`
	Hazards []Point  `json:"hazards"`
	Snakes  []*Snake `json:"snakes"`

	Me *Snake `json:"-"`
}

func (b *Board) Outside(p Point) bool {
	if p.X > b.Width-1 || p.X < 0 {
		return true
	}
	if p.Y > b.Height-1 || p.Y < 0 {
		return true
	}
	return false
}

// Opponents returns every snake on the board except Me.
func (b *Board) Opponents() []*Snake {
	snakes := []*Snake{}
	for _, snake := range b.Snakes {
		if snake == nil {
			continue
		}
		if b.Me != nil && snake.ID == b.Me.ID {
			continue
		}
		snakes = append(snakes, snake)
	}
	return snakes
}

type Game struct {
	ID      string  `json:"id"`
	Timeout int     `json:"timeout"`
	Ruleset Ruleset `json:"ruleset"`
}

type Ruleset struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Request struct {
	Game  *Game  `json:"game"`
	Turn  int    `json:"turn"`
	Board *Board `json:"board"`
	Self  *Snake `json:"you"`
}

// Init attaches the requesting snake to the board. Missing sections and
// null snakes are dropped so handlers never see nil pointers.
func (r *Request) Init() {
	if r.Game == nil {
		r.Game = &Game{}
	}
	if r.Board == nil {
		r.Board = &Board{}
	}
	snakes := r.Board.Snakes[:0]
	for _, snake := range r.Board.Snakes {
		if snake != nil {
			snakes = append(snakes, snake)
		}
	}
	r.Board.Snakes = snakes
	if r.Self == nil {
		return
	}
	r.Board.Me = r.Self
	for _, snake := range r.Board.Snakes {
		if snake.ID == r.Self.ID {
			r.Board.Me = snake
			return
		}
	}
}

// Alive reports whether the requesting snake is still on the board.
func (r *Request) Alive() bool {
	if r.Self == nil || r.Board == nil {
		return false
	}
	for _, snake := range r.Board.Snakes {
		if snake != nil && snake.ID == r.Self.ID {
			return true
		}
	}
	return false
}
