package main

import (
	"io/ioutil"
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func testSelector(seed int64) *Selector {
	return NewSelector(rand.New(rand.NewSource(seed)), DefaultFallback, log.New(ioutil.Discard))
}

func testBoard(me *Snake, others ...*Snake) *Board {
	return &Board{
		Height: 11,
		Width:  11,
		Food:   pts(5, 5, 9, 0, 2, 6),
		Snakes: append([]*Snake{me}, others...),
		Me:     me,
	}
}

func TestSelectMoveCornerWithNeckOnTheRight(t *testing.T) {
	me := snake("me", 0, 0, 1, 0, 2, 0)
	other := snake("other", 5, 4, 5, 3, 6, 3, 6, 2)
	b := testBoard(me, other)

	if got := testSelector(1).Candidates(b); !reflect.DeepEqual(got, Moves{Up}) {
		t.Errorf("candidates %v, want [up]", got)
	}
	for seed := int64(0); seed < 10; seed++ {
		if got := testSelector(seed).SelectMove(b); got != Up {
			t.Errorf("seed %d: got %s, want up", seed, got)
		}
	}
}

func TestSelectMoveTopWall(t *testing.T) {
	me := snake("me", 5, 10, 5, 9, 5, 8)
	other := snake("other", 5, 4, 5, 3, 6, 3, 6, 2)
	b := testBoard(me, other)

	if got := testSelector(1).Candidates(b); !reflect.DeepEqual(got, Moves{Left, Right}) {
		t.Errorf("candidates %v, want [left right]", got)
	}
	s := testSelector(7)
	for i := 0; i < 50; i++ {
		if got := s.SelectMove(b); got != Left && got != Right {
			t.Fatalf("got %s, want left or right", got)
		}
	}
}

func TestSelectMoveFallback(t *testing.T) {
	me := snake("me", 0, 0, 1, 0, 2, 0)
	blocker := snake("blocker", 0, 1, 0, 2, 0, 3)
	b := testBoard(me, blocker)

	s := testSelector(3)
	if got := s.Candidates(b); len(got) != 0 {
		t.Fatalf("candidates %v, want none", got)
	}
	if got := s.SelectMove(b); got != Right {
		t.Errorf("got %s, want right", got)
	}

	s.Fallback = Down
	if got := s.SelectMove(b); got != Down {
		t.Errorf("got %s, want configured fallback down", got)
	}
}

func TestSelectMoveWithoutSelf(t *testing.T) {
	b := &Board{Height: 11, Width: 11}
	if got := testSelector(1).SelectMove(b); got != DefaultFallback {
		t.Errorf("got %s, want %s", got, DefaultFallback)
	}
}

func TestSelectMoveIsUniform(t *testing.T) {
	me := snake("me", 5, 5, 5, 4, 5, 3)
	b := testBoard(me)
	s := testSelector(42)

	counts := map[Move]int{}
	for i := 0; i < 3000; i++ {
		counts[s.SelectMove(b)]++
	}
	if counts[Down] != 0 {
		t.Errorf("picked the neck %d times", counts[Down])
	}
	for _, m := range []Move{Up, Left, Right} {
		if counts[m] < 800 {
			t.Errorf("%s picked %d times out of 3000", m, counts[m])
		}
	}
}

func TestSelectMoveConcurrent(t *testing.T) {
	me := snake("me", 5, 10, 5, 9, 5, 8)
	b := testBoard(me)
	s := testSelector(9)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := s.SelectMove(b); got != Left && got != Right {
					t.Errorf("got %s", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSelectMoveSkipsNullSnakes(t *testing.T) {
	me := snake("me", 5, 10, 5, 9, 5, 8)
	b := &Board{Height: 11, Width: 11, Snakes: []*Snake{nil, me}, Me: me}
	if got := testSelector(1).Candidates(b); !reflect.DeepEqual(got, Moves{Left, Right}) {
		t.Errorf("candidates %v, want [left right]", got)
	}
	if len(b.Opponents()) != 0 {
		t.Errorf("opponents %v, want none", b.Opponents())
	}
	if PlainGrid(b) == "" {
		t.Error("empty grid")
	}
}

func TestRequestInitDropsNullSnakes(t *testing.T) {
	me := snake("me", 5, 10, 5, 9, 5, 8)
	r := &Request{Board: &Board{Snakes: []*Snake{nil, me, nil}}, Self: me}
	r.Init()
	if len(r.Board.Snakes) != 1 || r.Board.Me != me || r.Game == nil {
		t.Errorf("unexpected board %+v", r.Board)
	}
}
