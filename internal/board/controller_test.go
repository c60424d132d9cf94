package board

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactask/clients/boardapi"
	"tictactask/internal/board/reconcile"
	"tictactask/internal/models"
)

type fakeGateway struct {
	mu        sync.Mutex
	created   []models.Task
	deleted   []int
	createErr error
	deleteErr map[int]error
}

func (g *fakeGateway) CreateTask(_ context.Context, task models.Task) (*models.Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, task)
	return &task, nil
}

func (g *fakeGateway) DeleteTask(_ context.Context, _, _ int64, location int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err, ok := g.deleteErr[location]; ok {
		return err
	}
	g.deleted = append(g.deleted, location)
	return nil
}

type fakeLoop struct {
	mu         sync.Mutex
	reconciles int
	snap       reconcile.Snapshot
}

func (l *fakeLoop) Reconcile(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reconciles++
	return nil
}

func (l *fakeLoop) Snapshot() reconcile.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap
}

func (l *fakeLoop) reconcileCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reconciles
}

func newTestController() (*Controller, *fakeGateway, *fakeLoop) {
	gateway := &fakeGateway{deleteErr: map[int]error{}}
	loop := &fakeLoop{}
	return NewController(gateway, loop, 10, 1), gateway, loop
}

func TestSubmitTasksPersistsOnlyNamedSlots(t *testing.T) {
	ctrl, gateway, loop := newTestController()

	var slots reconcile.Slots
	slots[0] = reconcile.Slot{Name: "sweep", TimeEstimate: 10}
	slots[4] = reconcile.Slot{Name: "mop", TimeEstimate: 25}

	require.NoError(t, ctrl.SubmitTasks(context.Background(), slots))

	require.Len(t, gateway.created, 2)
	assert.Equal(t, models.Task{UserID: 10, MatchID: 1, Location: 0, Description: "sweep", TimeToDo: 10}, gateway.created[0])
	assert.Equal(t, models.Task{UserID: 10, MatchID: 1, Location: 4, Description: "mop", TimeToDo: 25}, gateway.created[1])
	assert.Equal(t, 1, loop.reconcileCount())
	assert.Empty(t, ctrl.LastError())
}

func TestSubmitTasksRejectsEmptyBatch(t *testing.T) {
	ctrl, gateway, loop := newTestController()

	err := ctrl.SubmitTasks(context.Background(), reconcile.Slots{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, gateway.created)
	assert.Zero(t, loop.reconcileCount())
}

func TestSubmitTasksRejectsNegativeEstimate(t *testing.T) {
	ctrl, gateway, _ := newTestController()

	var slots reconcile.Slots
	slots[2] = reconcile.Slot{Name: "sweep", TimeEstimate: -5}

	err := ctrl.SubmitTasks(context.Background(), slots)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, gateway.created)
}

func TestSubmitTasksSurfacesWriteFailure(t *testing.T) {
	ctrl, gateway, loop := newTestController()
	gateway.createErr = errors.New("boom")

	var slots reconcile.Slots
	slots[0] = reconcile.Slot{Name: "sweep", TimeEstimate: 10}

	require.Error(t, ctrl.SubmitTasks(context.Background(), slots))
	assert.Zero(t, loop.reconcileCount())
	assert.NotEmpty(t, ctrl.LastError())
}

func TestSubmitClearsDraftOnSuccess(t *testing.T) {
	ctrl, _, _ := newTestController()

	require.NoError(t, ctrl.EditSlot(3, "clean", 15))
	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, reconcile.Slots{}, ctrl.Draft())
}

func TestDeleteTaskReconcilesAfterSuccess(t *testing.T) {
	ctrl, gateway, loop := newTestController()

	require.NoError(t, ctrl.DeleteTask(context.Background(), 5))

	assert.Equal(t, []int{5}, gateway.deleted)
	assert.Equal(t, 1, loop.reconcileCount())
}

func TestDeleteTaskRejectsInvalidLocation(t *testing.T) {
	ctrl, gateway, _ := newTestController()

	err := ctrl.DeleteTask(context.Background(), 9)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, gateway.deleted)
}

func TestClearMyTasksSweepsAllLocations(t *testing.T) {
	ctrl, gateway, loop := newTestController()

	require.NoError(t, ctrl.ClearMyTasks(context.Background()))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, gateway.deleted)
	assert.Equal(t, 1, loop.reconcileCount())
}

func TestClearMyTasksTreatsMissingCellsAsDeleted(t *testing.T) {
	ctrl, gateway, loop := newTestController()
	gateway.deleteErr[2] = &boardapi.NotFoundError{Endpoint: "/tasks/10/1/2"}
	gateway.deleteErr[6] = &boardapi.NotFoundError{Endpoint: "/tasks/10/1/6"}

	require.NoError(t, ctrl.ClearMyTasks(context.Background()))

	assert.Equal(t, []int{0, 1, 3, 4, 5, 7, 8}, gateway.deleted)
	assert.Equal(t, 1, loop.reconcileCount())
}

func TestClearMyTasksContinuesPastFailures(t *testing.T) {
	ctrl, gateway, loop := newTestController()
	gateway.deleteErr[1] = &boardapi.RequestError{Endpoint: "/tasks/10/1/1", StatusCode: 500, Message: "boom"}

	err := ctrl.ClearMyTasks(context.Background())

	require.Error(t, err)
	// Every other location was still attempted.
	assert.Equal(t, []int{0, 2, 3, 4, 5, 6, 7, 8}, gateway.deleted)
	assert.Zero(t, loop.reconcileCount())
	assert.NotEmpty(t, ctrl.LastError())
}

func TestToggleMarkRules(t *testing.T) {
	ctrl, _, _ := newTestController()

	// Claim an empty cell.
	require.NoError(t, ctrl.ToggleMark(0, MarkX))
	assert.Equal(t, MarkX, ctrl.Marks()[0])

	// The opposite mark never overwrites.
	require.NoError(t, ctrl.ToggleMark(0, MarkO))
	assert.Equal(t, MarkX, ctrl.Marks()[0])

	// The same mark toggles the cell clear.
	require.NoError(t, ctrl.ToggleMark(0, MarkX))
	assert.Equal(t, MarkNone, ctrl.Marks()[0])
}

func TestToggleMarkValidation(t *testing.T) {
	ctrl, _, _ := newTestController()

	assert.Error(t, ctrl.ToggleMark(9, MarkX))
	assert.Error(t, ctrl.ToggleMark(0, MarkNone))
}

func TestLocalOnlyState(t *testing.T) {
	ctrl, _, _ := newTestController()

	assert.False(t, ctrl.DarkMode())
	assert.True(t, ctrl.ToggleDarkMode())
	assert.True(t, ctrl.DarkMode())

	ctrl.SetStakes("loser does the dishes")
	assert.Equal(t, "loser does the dishes", ctrl.Stakes())
}
