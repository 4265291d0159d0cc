package domain

import "time"

const (
	RoleDeveloper = "developer"
	RoleDesigner  = "designer"
)

// StartingCredits is granted to every account at registration.
const StartingCredits int64 = 500

// ValidRole reports whether role is one of the two selectable marketplace roles.
func ValidRole(role string) bool {
	return role == RoleDeveloper || role == RoleDesigner
}

// OppositeRole returns the counterpart role. Missions may only be applied to
// by users of the role opposite to the creator's.
func OppositeRole(role string) string {
	if role == RoleDeveloper {
		return RoleDesigner
	}
	return RoleDeveloper
}

// Profile carries presentation-only user data. The core treats all of it as
// opaque strings.
type Profile struct {
	Bio       string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Avatar    string   `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Skills    []string `json:"skills,omitempty" bson:"skills,omitempty"`
	Portfolio string   `json:"portfolio,omitempty" bson:"portfolio,omitempty"`
}

// User models an account. Role starts unset and is chosen once via role
// selection; Credits is mutated only by ledger operations tied to mission
// lifecycle events and never goes negative.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Credits      int64     `json:"credits"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
