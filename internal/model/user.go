package model

// User represents an identity record in the user directory.
// This is a pure domain model with no persistence-specific dependencies or tags;
// it is shared across the HTTP, service and client layers.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status,omitempty"`
	Joined       string `json:"joined,omitempty"`
	AvatarMode   string `json:"avatar_mode,omitempty"`
	AvatarBase64 string `json:"avatar_base64,omitempty"`
}

// Roles accepted for User.Role.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Statuses accepted for User.Status.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Avatar modes accepted for User.AvatarMode.
const (
	AvatarLetter = "letter"
	AvatarImage  = "image"
)

// Account is a login-capable user from the fixed credential table.
// The password never leaves the server; Account is not serialized to clients.
type Account struct {
	ID       int
	Name     string
	Email    string
	Password string
	Role     string
}

// UserUpdate carries a partial update for a directory user.
// Nil fields are left untouched; the id is immutable.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
	Joined *string `json:"joined,omitempty"`
}

// ProfileUpdate carries a partial update for the authenticated user's own
// profile. Setting AvatarMode to "letter" clears any stored avatar image.
type ProfileUpdate struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	AvatarMode   *string `json:"avatar_mode,omitempty"`
	AvatarBase64 *string `json:"avatar_base64,omitempty"`
}
