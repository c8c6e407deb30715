package main // import "github.com/tonobo/snake-top"

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
)

const DefaultFallback = Right

// Selector picks one move per turn. It keeps no game state; the random
// source is the only thing shared between calls.
type Selector struct {
	Fallback Move

	mu     sync.Mutex
	rand   *rand.Rand
	logger *log.Logger
}

func NewSelector(r *rand.Rand, fallback Move, logger *log.Logger) *Selector {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Selector{
		Fallback: fallback,
		rand:     r,
		logger:   logger,
	}
}

type stage struct {
	name   string
	filter func(Moves) Moves
}

// Candidates returns the moves left after every filter has run.
func (s *Selector) Candidates(b *Board) Moves {
	me := b.Me
	if me == nil || len(me.Body) == 0 {
		return Moves{}
	}
	head := me.HeadPoint()
	stages := []stage{
		{"neck", func(ms Moves) Moves { return AvoidNeck(head, me.Body, ms) }},
		{"walls", func(ms Moves) Moves { return AvoidWalls(head, b.Width, b.Height, ms) }},
		{"body", func(ms Moves) Moves { return AvoidBody(head, me.Body, ms) }},
		{"snakes", func(ms Moves) Moves { return AvoidSnakes(head, me.Len(), me.ID, b.Snakes, ms) }},
	}
	moves := AllMoves()
	for _, st := range stages {
		next := st.filter(moves)
		if removed := moves.Diff(next); len(removed) > 0 {
			s.logger.Debug("filtered", "stage", st.name, "removed", removed, "head", head)
		}
		moves = next
	}
	return moves
}

func (s *Selector) SelectMove(b *Board) Move {
	moves := s.Candidates(b)
	if len(moves) == 0 {
		s.logger.Info("no safe move left", "fallback", s.Fallback)
		return s.Fallback
	}
	s.logger.Debug("possible moves", "candidates", moves)
	return moves[s.intn(len(moves))]
}

func (s *Selector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Intn(n)
}
