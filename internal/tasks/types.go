package tasks

// CreateTaskRequest represents the data needed to place a task on a board
// cell. Writing to an occupied cell replaces the previous task for the same
// owner (last writer wins on the natural key).
type CreateTaskRequest struct {
	UserID      int64  `json:"user_id"`
	MatchID     int64  `json:"match_id"`
	Location    int    `json:"location"`
	Description string `json:"description"`
	TimeToDo    int    `json:"time_to_do"`
	Complete    bool   `json:"complete"`
}
