package user

import (
	"database/sql"
	"time"
)

// User is an admin editor account. The password hash never leaves the server.
type User struct {
	ID           int64        `db:"id" json:"id"`
	Email        string       `db:"email" json:"email"`
	Name         string       `db:"name" json:"name"`
	Password     string       `db:"password" json:"-"`
	Verified     bool         `db:"verified" json:"verified"`
	TokenVersion int64        `db:"token_version" json:"-"`
	LastLogin    sql.NullTime `db:"last_login" json:"-"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"-"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
