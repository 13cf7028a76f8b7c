package enum

// UserRole is the access level of a user account
type UserRole string

const (
	// RoleAdmin manages items, users, printers, shop profile and reports
	RoleAdmin UserRole = "admin"
	// RoleStaff runs the till: orders, settlement, history
	RoleStaff UserRole = "staff"
	// RoleWaiter has the restricted PIN-login surface: order taking only
	RoleWaiter UserRole = "waiter"
)

func (r UserRole) String() string {
	return string(r)
}

// Valid reports whether the role is a known value
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleWaiter:
		return true
	}
	return false
}
