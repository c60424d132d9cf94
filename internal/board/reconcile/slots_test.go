package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tictactask/internal/models"
)

func testMatch() *models.Match {
	user2 := int64(20)
	return &models.Match{ID: 1, User1ID: 10, User2ID: &user2}
}

func TestMergeTasksRoutesByOwner(t *testing.T) {
	tasks := []models.Task{
		{UserID: 10, MatchID: 1, Location: 3, Description: "clean", TimeToDo: 15},
		{UserID: 20, MatchID: 1, Location: 0, Description: "dishes", TimeToDo: 10},
		{UserID: 20, MatchID: 1, Location: 8, Description: "laundry", TimeToDo: 45},
	}

	player1, player2 := MergeTasks(tasks, testMatch())

	assert.Equal(t, Slot{Name: "clean", TimeEstimate: 15}, player1[3])
	assert.Equal(t, Slot{Name: "dishes", TimeEstimate: 10}, player2[0])
	assert.Equal(t, Slot{Name: "laundry", TimeEstimate: 45}, player2[8])
}

func TestMergeTasksDiscardsOutOfRangeLocations(t *testing.T) {
	tasks := []models.Task{
		{UserID: 10, MatchID: 1, Location: 9, Description: "overflow", TimeToDo: 5},
		{UserID: 10, MatchID: 1, Location: -1, Description: "underflow", TimeToDo: 5},
	}

	player1, player2 := MergeTasks(tasks, testMatch())

	assert.Equal(t, Slots{}, player1)
	assert.Equal(t, Slots{}, player2)
}

func TestMergeTasksDiscardsUnknownOwners(t *testing.T) {
	tasks := []models.Task{
		{UserID: 99, MatchID: 1, Location: 4, Description: "orphan", TimeToDo: 5},
	}

	player1, player2 := MergeTasks(tasks, testMatch())

	assert.Equal(t, Slots{}, player1)
	assert.Equal(t, Slots{}, player2)
}

func TestMergeTasksOnePlayerLeavesOtherEmpty(t *testing.T) {
	tasks := []models.Task{
		{UserID: 10, MatchID: 1, Location: 0, Description: "sweep", TimeToDo: 20},
	}

	player1, player2 := MergeTasks(tasks, testMatch())

	assert.False(t, player1[0].Empty())
	assert.Equal(t, Slots{}, player2)
	for _, slot := range player2 {
		assert.True(t, slot.Empty())
		assert.Zero(t, slot.TimeEstimate)
	}
}

func TestMergeTasksFullBoardRoundTrip(t *testing.T) {
	var tasks []models.Task
	for loc := 0; loc < models.BoardSize; loc++ {
		tasks = append(tasks, models.Task{
			UserID: 10, MatchID: 1, Location: loc,
			Description: "task", TimeToDo: loc,
		})
	}

	player1, _ := MergeTasks(tasks, testMatch())

	for loc, slot := range player1 {
		assert.Equal(t, "task", slot.Name)
		assert.Equal(t, loc, slot.TimeEstimate)
	}
	assert.True(t, player1.Submitted())
}

func TestMergeTasksIsIdempotent(t *testing.T) {
	tasks := []models.Task{
		{UserID: 10, MatchID: 1, Location: 2, Description: "vacuum", TimeToDo: 30},
		{UserID: 20, MatchID: 1, Location: 5, Description: "trash", TimeToDo: 5},
	}

	p1a, p2a := MergeTasks(tasks, testMatch())
	p1b, p2b := MergeTasks(tasks, testMatch())

	assert.Equal(t, p1a, p1b)
	assert.Equal(t, p2a, p2b)
}

func TestSlotsSubmitted(t *testing.T) {
	var empty Slots
	assert.False(t, empty.Submitted())

	var one Slots
	one[4] = Slot{Name: "mop", TimeEstimate: 12}
	assert.True(t, one.Submitted())
}
