package models

// Match is the unit of game-session scoping. User2ID stays nil until a
// second player joins. The password is a shared secret checked at creation
// time only, never on join.
type Match struct {
	ID       int64  `json:"id"`
	User1ID  int64  `json:"user1_id"`
	User2ID  *int64 `json:"user2_id"`
	Password string `json:"-"`
	Complete bool   `json:"complete"`
}
