package game

// lines are the 3 rows, 3 columns and 2 diagonals.
var lines = [8][Side]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},

	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},

	{0, 4, 8},
	{2, 4, 6},
}

// HasWon reports whether any line is filled with player's mark.
// Marks are small integers, so exact comparison is used.
func HasWon(b Board, player float32) bool {
	for _, l := range lines {
		if b[l[0]] == player && b[l[1]] == player && b[l[2]] == player {
			return true
		}
	}
	return false
}

// HasEmptyCell reports whether a move is still possible.
func HasEmptyCell(b Board) bool {
	for _, v := range b {
		if v == Empty {
			return true
		}
	}
	return false
}

// Ended checks if the game has ended. If it has, who is the winner?
// A drawn game ends with winner None.
func Ended(b Board) (ended bool, winner Colour) {
	if HasWon(b, MaxMark) {
		return true, Max
	}
	if HasWon(b, MinMark) {
		return true, Min
	}
	if !HasEmptyCell(b) {
		return true, None
	}
	return false, None
}

// EmptyCells lists the indices a move can be played on, in index order.
func EmptyCells(b Board) []int {
	retVal := make([]int, 0, Size)
	for i, v := range b {
		if v == Empty {
			retVal = append(retVal, i)
		}
	}
	return retVal
}
