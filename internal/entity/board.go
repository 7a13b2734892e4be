package entity

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	MarkedX
	MarkedO
)

func (that Cell) String() string {
	switch that {
	case MarkedX:
		return "X"
	case MarkedO:
		return "O"
	default:
		return ""
	}
}

// Player returns the owner of a marked cell. ok is false for Empty.
func (that Cell) Player() (player Player, ok bool) {
	switch that {
	case MarkedX:
		return PlayerX, true
	case MarkedO:
		return PlayerO, true
	default:
		return 0, false
	}
}

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Board is laid out row-major: index = row*3 + col.
type Board [BoardSize]Cell

// WinCombos lists rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DetectWinner returns the mark of the first completed triple in WinCombos order.
func DetectWinner(board Board) (Player, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return a.Player()
		}
	}

	return 0, false
}

// IsFull reports whether no Empty cell remains.
func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}

	return true
}

// DeriveOutcome checks for a winner first, then for a full board.
func DeriveOutcome(board Board) Outcome {
	if winner, ok := DetectWinner(board); ok {
		return Won(winner)
	}

	if IsFull(board) {
		return Draw()
	}

	return InProgress()
}

// Strings renders every cell as "", "X" or "O".
func (that Board) Strings() [BoardSize]string {
	var cells [BoardSize]string
	for i, cell := range that {
		cells[i] = cell.String()
	}

	return cells
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Cell) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}
