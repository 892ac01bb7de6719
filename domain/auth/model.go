package auth

import "time"

// SessionDuration is how long an admin session cookie stays valid.
const SessionDuration = 24 * time.Hour

// LockoutThreshold is the failed-attempt count that locks an account.
const LockoutThreshold = 4

// LockoutDuration is how long a locked account stays locked.
const LockoutDuration = 5 * time.Minute

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

// User mirrors the columns login needs from the users table.
type User struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	Password     string `db:"password"`
	TokenVersion int64  `db:"token_version"`
}
