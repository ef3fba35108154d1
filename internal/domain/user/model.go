package user

// Role values attached to authenticated principals.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleViewer = "viewer"
)

// Principal is the authenticated actor resolved from a bearer token.
// Every mutating operation is attributed to a Principal.
type Principal struct {
	UserID string
	Name   string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
