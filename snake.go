package main // import "github.com/tonobo/snake-top"

type Snake struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Body   []Point `json:"body"`
	Head   Point   `json:"head"`
	Length int     `json:"length"`
	Shout  string  `json:"shout,omitempty"`
}

func (s *Snake) HeadPoint() Point {
	if len(s.Body) > 0 {
		return s.Body[0]
	}
	return s.Head
}

func (s *Snake) Neck() (Point, bool) {
	if len(s.Body) < 2 {
		return Point{}, false
	}
	return s.Body[1], true
}

func (s *Snake) Len() int {
	if s.Length > 0 {
		return s.Length
	}
	return len(s.Body)
}
