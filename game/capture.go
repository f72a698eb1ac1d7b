package game

// region accumulates one depth-first traversal from a neighbour of a placed
// stone. It stays closed until the traversal touches the board edge.
type region struct {
	wall    CellState
	visited []bool
	cells   []Cell
	closed  bool
}

func newRegion(b *Board, wall CellState) *region {
	return &region{
		wall:    wall,
		visited: make([]bool, len(b.cells)),
		closed:  true,
	}
}

// explore walks every cell reachable from (x, y) without crossing a wall.
// Reaching an edge cell opens the region and stops the walk.
func (r *region) explore(b *Board, x, y int) {
	if !r.closed || !b.InBounds(x, y) {
		return
	}
	index := y*b.size + x
	if r.visited[index] || b.at(x, y) == r.wall {
		return
	}
	r.visited[index] = true
	r.cells = append(r.cells, Cell{X: x, Y: y})

	if b.OnEdge(x, y) {
		r.closed = false
		return
	}
	for _, d := range directions {
		r.explore(b, x+d.X, y+d.Y)
	}
}

// Capture resolves enclosures created by the stone m just placed on b.
// Each in-bounds neighbour of m starts a fresh traversal that treats m's
// own stones as walls; when a traversal never reaches the edge, every enemy
// stone inside it becomes captured. Regions are applied one neighbour at a
// time (+x, +y, -x, -y), so later traversals see earlier captures. Empty
// cells inside a closed region stay empty. Returns the number of stones
// captured.
func Capture(b *Board, m Move) int {
	wall := m.Player.Owned()
	prey := m.Player.Opponent().Owned()
	captured := m.Player.Opponent().Captured()

	total := 0
	for _, d := range directions {
		nx, ny := m.X+d.X, m.Y+d.Y
		if !b.InBounds(nx, ny) {
			continue
		}

		r := newRegion(b, wall)
		r.explore(b, nx, ny)
		if !r.closed {
			continue
		}
		for _, c := range r.cells {
			if b.at(c.X, c.Y) == prey {
				b.set(c.X, c.Y, captured)
				total++
			}
		}
	}
	return total
}

// Play places a stone for m.Player and resolves captures on b, returning
// the number of stones captured.
func Play(b *Board, m Move) (int, error) {
	if err := b.Place(m.X, m.Y, m.Player); err != nil {
		return 0, err
	}
	return Capture(b, m), nil
}
