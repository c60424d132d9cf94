package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactask/internal/models"
)

type fakeTaskKey struct {
	userID   int64
	matchID  int64
	location int
}

type fakeRepo struct {
	tasks map[fakeTaskKey]*models.Task
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: map[fakeTaskKey]*models.Task{}}
}

func (r *fakeRepo) CreateTask(_ context.Context, req CreateTaskRequest) (*models.Task, error) {
	key := fakeTaskKey{req.UserID, req.MatchID, req.Location}
	t := &models.Task{
		UserID: req.UserID, MatchID: req.MatchID, Location: req.Location,
		Description: req.Description, TimeToDo: req.TimeToDo, Complete: req.Complete,
	}
	r.tasks[key] = t
	return t, nil
}

func (r *fakeRepo) GetTask(_ context.Context, userID, matchID int64, location int) (*models.Task, error) {
	t, ok := r.tasks[fakeTaskKey{userID, matchID, location}]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (r *fakeRepo) ListTasksForUserMatch(_ context.Context, userID, matchID int64) ([]models.Task, error) {
	var out []models.Task
	for _, t := range r.tasks {
		if t.UserID == userID && t.MatchID == matchID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListTasksForMatch(_ context.Context, matchID int64) ([]models.Task, error) {
	var out []models.Task
	for _, t := range r.tasks {
		if t.MatchID == matchID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeRepo) MarkComplete(_ context.Context, userID, matchID int64, location int) (*models.Task, error) {
	t, ok := r.tasks[fakeTaskKey{userID, matchID, location}]
	if !ok {
		return nil, ErrNotFound
	}
	t.Complete = true
	return t, nil
}

func (r *fakeRepo) DeleteTask(_ context.Context, userID, matchID int64, location int) error {
	key := fakeTaskKey{userID, matchID, location}
	if _, ok := r.tasks[key]; !ok {
		return ErrNotFound
	}
	delete(r.tasks, key)
	return nil
}

func validRequest() CreateTaskRequest {
	return CreateTaskRequest{UserID: 10, MatchID: 1, Location: 3, Description: "clean", TimeToDo: 15}
}

func TestCreateTask(t *testing.T) {
	app := NewApp(newFakeRepo())

	task, err := app.CreateTask(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "clean", task.Description)
	assert.Equal(t, 15, task.TimeToDo)
	assert.False(t, task.Complete)
}

func TestCreateTaskValidation(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	cases := map[string]func(*CreateTaskRequest){
		"missing user":      func(r *CreateTaskRequest) { r.UserID = 0 },
		"missing match":     func(r *CreateTaskRequest) { r.MatchID = 0 },
		"location too high": func(r *CreateTaskRequest) { r.Location = 9 },
		"location negative": func(r *CreateTaskRequest) { r.Location = -1 },
		"empty description": func(r *CreateTaskRequest) { r.Description = "" },
		"negative estimate": func(r *CreateTaskRequest) { r.TimeToDo = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := app.CreateTask(ctx, req)
			assert.Error(t, err)
		})
	}
}

func TestCreateTaskReplacesSameCell(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	_, err := app.CreateTask(ctx, validRequest())
	require.NoError(t, err)

	replacement := validRequest()
	replacement.Description = "vacuum"
	replacement.TimeToDo = 30
	_, err = app.CreateTask(ctx, replacement)
	require.NoError(t, err)

	got, err := app.GetTask(ctx, 10, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "vacuum", got.Description)
	assert.Equal(t, 30, got.TimeToDo)

	list, err := app.ListTasksForUserMatch(ctx, 10, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListTasksForMatchCoversBothPlayers(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	mine := validRequest()
	theirs := validRequest()
	theirs.UserID = 20
	theirs.Location = 5

	_, err := app.CreateTask(ctx, mine)
	require.NoError(t, err)
	_, err = app.CreateTask(ctx, theirs)
	require.NoError(t, err)

	all, err := app.ListTasksForMatch(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyMine, err := app.ListTasksForUserMatch(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, onlyMine, 1)
	assert.Equal(t, int64(10), onlyMine[0].UserID)
}

func TestMarkComplete(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	_, err := app.CreateTask(ctx, validRequest())
	require.NoError(t, err)

	done, err := app.MarkComplete(ctx, 10, 1, 3)
	require.NoError(t, err)
	assert.True(t, done.Complete)

	_, err = app.MarkComplete(ctx, 10, 1, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	_, err := app.CreateTask(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, app.DeleteTask(ctx, 10, 1, 3))
	assert.ErrorIs(t, app.DeleteTask(ctx, 10, 1, 3), ErrNotFound)
}
