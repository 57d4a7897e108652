package models

// Well-known role strings. Authorization is a plain role check, nothing more.
const (
	RoleOwner   = "owner"
	RoleFinance = "finance"
	RoleAgent   = "agent"
)

// User is a back-office account. Hash is the bcrypt password hash and never
// leaves the server.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	Hash        string `json:"hash"`
}

// Public is the representation safe to return to the client.
func (u User) Public() PublicUser {
	return PublicUser{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}

type PublicUser struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// Credentials is the login payload.
type Credentials struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}
