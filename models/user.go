// models/user.go
package models

// Role is the coarse authorization level a signed-in user holds.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleTechnician Role = "TECHNICIAN"
	RoleAdmin      Role = "ADMIN"
)

// DefaultRole is assumed when a token carries no usable role claim.
const DefaultRole = RoleCustomer

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleTechnician, RoleAdmin:
		return true
	}
	return false
}

// Identity is what the client knows about the signed-in user, read from the
// token payload. It is advisory only; the backend re-checks every request.
type Identity struct {
	SubjectID string `json:"subjectId"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the signup payload.
type Registration struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the backend's answer to a successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
}

// UserProfile is the signed-in user's own profile record.
type UserProfile struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
}
