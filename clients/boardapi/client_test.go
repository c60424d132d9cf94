package boardapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactask/internal/models"
)

func TestLoginSendsCredentialsAndReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "secret", body["pwd"])

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer srv.Close()

	token, err := New(srv.URL).Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestSetTokenAttachesBearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"users_list": []models.User{}})
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("tok-123")
	_, err := client.Users(context.Background())
	require.NoError(t, err)
}

func TestMatchNotFoundMapsToNotFoundError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Match not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Match(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "/matches/42", nf.Endpoint)
}

func TestServerErrorMapsToRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Internal Server Error"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Match(context.Background(), 42)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
}

func TestTransportFailureMapsToRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL).Match(context.Background(), 42)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Zero(t, reqErr.StatusCode)
}

func TestUsersDecodesListEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"users_list": []models.User{
			{ID: 1, Username: "alice"},
			{ID: 2, Username: "bob"},
		}})
	}))
	defer srv.Close()

	users, err := New(srv.URL).Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
}

func TestCreateMatchPostsUser1(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/matches", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(10), body["user1_id"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Match{ID: 7, User1ID: 10})
	}))
	defer srv.Close()

	match, err := New(srv.URL).CreateMatch(context.Background(), 10, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, int64(7), match.ID)
	assert.Equal(t, int64(10), match.User1ID)
}

func TestAddUser2PatchesJoinEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/matches/7/addUser2", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(20), body["user2_id"])

		user2 := int64(20)
		json.NewEncoder(w).Encode(models.Match{ID: 7, User1ID: 10, User2ID: &user2})
	}))
	defer srv.Close()

	match, err := New(srv.URL).AddUser2(context.Background(), 7, 20)
	require.NoError(t, err)
	require.NotNil(t, match.User2ID)
	assert.Equal(t, int64(20), *match.User2ID)
}

func TestDeleteTaskHitsTripleKeyEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/tasks/10/1/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).DeleteTask(context.Background(), 10, 1, 3))
}

func TestTasksForMatchDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tasks/match/1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"tasks": []models.Task{
			{UserID: 10, MatchID: 1, Location: 3, Description: "clean", TimeToDo: 15},
		}})
	}))
	defer srv.Close()

	tasks, err := New(srv.URL).TasksForMatch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "clean", tasks[0].Description)
}

func TestPollGameStateQueryShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/poll-game-state", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("matchId"))
		assert.Equal(t, "10", q.Get("user1Id"))
		assert.False(t, q.Has("user2Id"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"match":   models.Match{ID: 1, User1ID: 10},
			"tasks": map[string]any{
				"user1": []models.Task{{UserID: 10, MatchID: 1, Location: 0, Description: "sweep", TimeToDo: 10}},
				"user2": []models.Task{},
			},
		})
	}))
	defer srv.Close()

	state, err := New(srv.URL).PollGameState(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	assert.True(t, state.Success)
	require.NotNil(t, state.Match)
	require.Len(t, state.Tasks.User1, 1)
	assert.Empty(t, state.Tasks.User2)
}

func TestResolveBaseURLPrefersEnvOverride(t *testing.T) {
	t.Setenv("TICTACTASK_API_URL", "http://example.test:9000")
	assert.Equal(t, "http://example.test:9000", ResolveBaseURL())

	t.Setenv("TICTACTASK_API_URL", "")
	t.Setenv("API_URL", "http://fallback.test")
	assert.Equal(t, "http://fallback.test", ResolveBaseURL())

	t.Setenv("API_URL", "")
	assert.Equal(t, DefaultBaseURL, ResolveBaseURL())
}
