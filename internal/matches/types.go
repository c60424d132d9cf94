package matches

// CreateMatchRequest represents the data needed to create a new match.
// The password is the shared secret the second player must know out of band;
// it is checked at creation only.
type CreateMatchRequest struct {
	User1ID  int64  `json:"user1_id"`
	Password string `json:"password"`
}

// JoinMatchRequest carries the second player's identity.
type JoinMatchRequest struct {
	User2ID int64 `json:"user2_id"`
}
