package boardapi

import "fmt"

func userEndpoint(id int64) string {
	return fmt.Sprintf("/users/%d", id)
}

func matchEndpoint(id int64) string {
	return fmt.Sprintf("/matches/%d", id)
}

func matchesForUserEndpoint(userID int64) string {
	return fmt.Sprintf("/matches/user/%d", userID)
}

func taskEndpoint(userID, matchID int64, location int) string {
	return fmt.Sprintf("/tasks/%d/%d/%d", userID, matchID, location)
}

func tasksForUserMatchEndpoint(userID, matchID int64) string {
	return fmt.Sprintf("/tasks/user/%d/match/%d", userID, matchID)
}

func tasksForMatchEndpoint(matchID int64) string {
	return fmt.Sprintf("/tasks/match/%d", matchID)
}

func pollGameStateEndpoint(matchID, user1ID, user2ID int64) string {
	endpoint := fmt.Sprintf("/poll-game-state?matchId=%d&user1Id=%d", matchID, user1ID)
	if user2ID != 0 {
		endpoint += fmt.Sprintf("&user2Id=%d", user2ID)
	}
	return endpoint
}
