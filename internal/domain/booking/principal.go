package booking

import "github.com/google/uuid"

// Principal is the authenticated caller: the user id from the token plus
// its role tag. Authorization decisions key on the tag instead of looking
// attributes up at runtime.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}
