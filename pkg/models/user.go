package models

// User represents a user record
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	IsActive bool    `json:"isActive"`
}

// UserOption customizes a User built by NewUser
type UserOption func(*User)

// WithEmail sets the optional email address
func WithEmail(email string) UserOption {
	return func(u *User) {
		u.Email = &email
	}
}

// WithActive overrides the default active flag
func WithActive(active bool) UserOption {
	return func(u *User) {
		u.IsActive = active
	}
}

// NewUser creates a user from its fields. Email stays nil unless WithEmail is
// given and IsActive defaults to true.
func NewUser(id int, name string, opts ...UserOption) User {
	u := User{
		ID:       id,
		Name:     name,
		IsActive: true,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// GetID returns the user's identifier
func (u User) GetID() int {
	return u.ID
}
