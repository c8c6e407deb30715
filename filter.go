package main // import "github.com/tonobo/snake-top"

// AvoidNeck drops the move that would reverse into the second body segment.
func AvoidNeck(head Point, body []Point, moves Moves) Moves {
	if len(body) < 2 {
		return moves
	}
	dir := head.direction(body[1])
	for _, m := range moves {
		if m.Vector() == dir {
			return moves.Without(m)
		}
	}
	return moves
}

// AvoidWalls drops moves that leave a width x height board.
func AvoidWalls(head Point, width, height int, moves Moves) Moves {
	if head.Y == 0 {
		moves = moves.Without(Down)
	}
	if head.X == 0 {
		moves = moves.Without(Left)
	}
	if head.Y == height-1 {
		moves = moves.Without(Up)
	}
	if head.X == width-1 {
		moves = moves.Without(Right)
	}
	return moves
}

// AvoidBody drops moves onto our own body. Head and neck are skipped.
func AvoidBody(head Point, body []Point, moves Moves) Moves {
	if len(body) < 3 {
		return moves
	}
	return avoidSegments(head, body[2:], moves)
}

// AvoidSnakes drops moves onto any opponent body and moves into a cell an
// opponent head could also reach this turn. Opponents we outgrow by more
// than one segment are ignored.
func AvoidSnakes(head Point, length int, selfID string, snakes []*Snake, moves Moves) Moves {
	for _, snake := range snakes {
		if snake == nil || snake.ID == selfID {
			continue
		}
		if length > snake.Len()+1 {
			continue
		}
		other := snake.HeadPoint()
		for _, m := range AllMoves() {
			if _, ok := moveInto(other, head.Step(m)); ok {
				moves = moves.Without(m)
			}
		}
		moves = avoidSegments(head, snake.Body, moves)
	}
	return moves
}

func avoidSegments(head Point, segments []Point, moves Moves) Moves {
	for _, segment := range segments {
		if m, ok := moveInto(head, segment); ok {
			moves = moves.Without(m)
		}
	}
	return moves
}
