package game

// CellState represents what occupies a single board position.
type CellState uint8

const (
	Empty                CellState = iota // 0
	OwnedByUser                           // 1
	CapturedFromUser                      // 2
	OwnedByComputer                       // 3
	CapturedFromComputer                  // 4
)

var cellRunes = [...]rune{
	Empty:                '.',
	OwnedByUser:          'u',
	CapturedFromUser:     'U',
	OwnedByComputer:      'c',
	CapturedFromComputer: 'C',
}

func (s CellState) Valid() bool {
	return s <= CapturedFromComputer
}

// Rune is the single-character form used by Board.String and ParseBoard.
func (s CellState) Rune() rune {
	if !s.Valid() {
		return '?'
	}
	return cellRunes[s]
}

func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case OwnedByUser:
		return "OwnedByUser"
	case CapturedFromUser:
		return "CapturedFromUser"
	case OwnedByComputer:
		return "OwnedByComputer"
	case CapturedFromComputer:
		return "CapturedFromComputer"
	default:
		return "Invalid"
	}
}

func cellStateFromRune(r rune) (CellState, bool) {
	for s, c := range cellRunes {
		if c == r {
			return CellState(s), true
		}
	}
	return Empty, false
}
