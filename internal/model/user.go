// internal/model/user.go
package model

type UserStatus string

const (
	StatusActive        UserStatus = "active"
	StatusSuspended     UserStatus = "suspended"
	StatusDeprovisioned UserStatus = "deprovisioned"
)

// ActivityLevel is the latent per-user state that drives login and usage
// event density. It is computed once during generation and handed to the
// assignment/usage stage alongside the User record; it is never written to
// any table.
type ActivityLevel string

const (
	ActivityActive   ActivityLevel = "active"
	ActivityDormant  ActivityLevel = "dormant"
	ActivityInactive ActivityLevel = "inactive"
)

type User struct {
	OrgID       string     `csv:"org_id"`
	UserID      string     `csv:"user_id"`
	FirstName   string     `csv:"first_name"`
	LastName    string     `csv:"last_name"`
	Email       string     `csv:"email"`
	Department  string     `csv:"department"`
	Title       string     `csv:"title"`
	Status      UserStatus `csv:"status"`
	IsAdmin     bool       `csv:"is_admin"`
	CreatedAt   Timestamp  `csv:"created_at"`
	LastLoginAt *Timestamp `csv:"last_login_at"`
}
