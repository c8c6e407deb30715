package main // import "github.com/tonobo/snake-top"

import (
	"fmt"

	"github.com/joonazan/vec2"
)

type Move string

const (
	Up    Move = "up"
	Down  Move = "down"
	Left  Move = "left"
	Right Move = "right"
)

var Direction2Vector = map[Move]vec2.Vector{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

func (m Move) Vector() vec2.Vector {
	return Direction2Vector[m]
}

func (m Move) String() string {
	return string(m)
}

func ParseMove(s string) (Move, error) {
	m := Move(s)
	if _, ok := Direction2Vector[m]; !ok {
		return "", fmt.Errorf("unknown move %q", s)
	}
	return m, nil
}

// Moves is the set of candidate moves for one turn. Operations never modify
// the receiver.
type Moves []Move

func AllMoves() Moves {
	return Moves{Up, Down, Left, Right}
}

func (ms Moves) Contains(m Move) bool {
	for _, c := range ms {
		if c == m {
			return true
		}
	}
	return false
}

func (ms Moves) Without(m Move) Moves {
	out := make(Moves, 0, len(ms))
	for _, c := range ms {
		if c != m {
			out = append(out, c)
		}
	}
	return out
}

// Diff lists the moves in ms that are missing from next.
func (ms Moves) Diff(next Moves) Moves {
	var out Moves
	for _, c := range ms {
		if !next.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// moveInto returns the move that takes head onto target, if target is one of
// the four neighbouring cells.
func moveInto(head, target Point) (Move, bool) {
	for _, m := range AllMoves() {
		if head.Step(m) == target {
			return m, true
		}
	}
	return "", false
}
