package entity

// User is the authenticated principal supplied by the auth service. Name is
// an opaque account identifier; Permissions are the access bits granted to it.
type User struct {
	Name        string
	Permissions []string
}

const (
	PermissionServiceControl = "service_control"
	PermissionPaymentControl = "payment_control"
)

func (u User) HasPermission(name string) bool {
	for _, p := range u.Permissions {
		if p == name {
			return true
		}
	}

	return false
}
