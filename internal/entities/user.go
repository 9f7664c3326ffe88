package entities

const (
	RoleOrder   = "order"
	RoleInspect = "inspect"
)

// User is a directory entry. Users are fixed at startup; there is no
// registration flow.
type User struct {
	Username     string
	PasswordHash string
	Role         string
}

// Identity is the authenticated requester, extracted from the session cookie
// by middleware and passed explicitly to everything that needs it.
type Identity struct {
	Username string
	Role     string
}
