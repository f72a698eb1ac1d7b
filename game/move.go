package game

import "fmt"

// Cell is a board coordinate.
type Cell struct {
	X int
	Y int
}

// Move represents a placement by a player.
type Move struct {
	X      int
	Y      int
	Player Player
}

func (m Move) Cell() Cell {
	return Cell{X: m.X, Y: m.Y}
}

func (m Move) String() string {
	return fmt.Sprintf("%s@(%d,%d)", m.Player, m.X, m.Y)
}

// directions lists the orthogonal neighbours in traversal order: +x, +y, -x, -y.
var directions = [4]Cell{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
