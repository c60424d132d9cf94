package models

// BoardSize is the number of cells on the shared 3x3 board.
const BoardSize = 9

// Task is one player's assignment for a single board cell.
// (UserID, MatchID, Location) is the natural key; writes against an existing
// key are last-writer-wins.
type Task struct {
	UserID      int64  `json:"user_id"`
	MatchID     int64  `json:"match_id"`
	Location    int    `json:"location"`
	Description string `json:"description"`
	TimeToDo    int    `json:"time_to_do"`
	Complete    bool   `json:"complete"`
}

// ValidLocation reports whether loc addresses a cell on the board.
func ValidLocation(loc int) bool {
	return loc >= 0 && loc < BoardSize
}
