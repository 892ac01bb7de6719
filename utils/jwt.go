package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// AccessTokenExpiry is how long an issued admin token stays valid.
const AccessTokenExpiry = 24 * time.Hour

// GenerateAccessToken signs an admin session token. token_version is checked
// against the users table on every request so bumping it revokes old tokens.
func GenerateAccessToken(userID int64, email string, tokenVersion int64) (string, error) {
	jwtSecret := viper.GetString("JWT_SECRET")

	claims := jwt.MapClaims{
		"user_id":       userID,
		"email":         email,
		"token_version": tokenVersion,
		"exp":           time.Now().Add(AccessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
