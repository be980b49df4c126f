package models

// User is an account as returned by the profile endpoint.
type User struct {
	ID        int64   `json:"id"`
	Username  *string `json:"username,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Balance   Amount  `json:"balance"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// PhoneOr returns the account phone, or fallback when the server sent none.
func (u User) PhoneOr(fallback string) string {
	if u.Phone == nil || *u.Phone == "" {
		return fallback
	}
	return *u.Phone
}

// DisplayName prefers the username, then the phone.
func (u User) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return u.PhoneOr("")
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
