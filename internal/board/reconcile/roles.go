package reconcile

import "tictactask/internal/models"

// Role is the logical player-1/player-2 designation within a match. It is
// distinct from the raw user id; the match record's user1_id/user2_id fields
// are the authoritative mapping between the two.
type Role int

const (
	RoleUnknown Role = iota
	RolePlayer1
	RolePlayer2
)

func (r Role) String() string {
	switch r {
	case RolePlayer1:
		return "player1"
	case RolePlayer2:
		return "player2"
	default:
		return "unknown"
	}
}

// ResolveRole translates a raw user id into its role within the match.
// Records that belong to neither player resolve to RoleUnknown and are
// dropped by the merge.
func ResolveRole(userID int64, match *models.Match) Role {
	if match == nil {
		return RoleUnknown
	}
	if userID == match.User1ID {
		return RolePlayer1
	}
	if match.User2ID != nil && userID == *match.User2ID {
		return RolePlayer2
	}
	return RoleUnknown
}
