package reconcile

import (
	"tictactask/internal/models"
)

// Slot is the presentation view of one board cell for one player. The zero
// value is the empty sentinel.
type Slot struct {
	Name         string `json:"name"`
	TimeEstimate int    `json:"timeEstimate"`
}

// Empty reports whether the slot holds no task.
func (s Slot) Empty() bool {
	return s.Name == ""
}

// Slots is the dense 9-cell projection of one player's sparse
// (location -> task) mapping. Being a value type, assigning a Slots copies
// the whole array, which is what makes snapshot publication atomic.
type Slots [models.BoardSize]Slot

// Submitted reports whether at least one slot holds a task.
func (s Slots) Submitted() bool {
	for _, slot := range s {
		if !slot.Empty() {
			return true
		}
	}
	return false
}

// MergeTasks rebuilds both players' slot arrays from a full task fetch.
// Records with an out-of-range location or an owner that resolves to
// neither player are discarded. The input order does not matter: each
// record lands at its own location, and duplicate keys cannot occur because
// (user, match, location) is the store's primary key.
func MergeTasks(taskList []models.Task, match *models.Match) (player1, player2 Slots) {
	for _, t := range taskList {
		if !models.ValidLocation(t.Location) {
			continue
		}
		slot := Slot{Name: t.Description, TimeEstimate: t.TimeToDo}
		switch ResolveRole(t.UserID, match) {
		case RolePlayer1:
			player1[t.Location] = slot
		case RolePlayer2:
			player2[t.Location] = slot
		}
	}
	return player1, player2
}
