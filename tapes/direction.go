package tapes

import (
	"strconv"
	"strings"
)

// Direction is the head displacement of one step.
type Direction int

const (
	Left  Direction = -1
	Hold  Direction = 0
	Right Direction = 1
)

// ParseDirection parses left, hold or right, ignoring case.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "left":
		return Left, true
	case "hold":
		return Hold, true
	case "right":
		return Right, true
	}
	return 0, false
}

func (d Direction) Delta() int {
	return int(d)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Hold:
		return "Hold"
	case Right:
		return "Right"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}
