package middleware

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

// AuthCookieName is the cookie carrying the signed admin session token.
const AuthCookieName = "auth_token"

func rejectUnauthenticated(c echo.Context, code, message string) error {
	// Admin responses must never be cached by intermediaries, including rejections.
	c.Response().Header().Set("Cache-Control", "no-store")
	return apperrors.RespondWithError(c, apperrors.NewUnauthorized(code, message))
}

// JWTMiddleware validates the session token from the auth cookie and extracts
// user claims. Every admin route goes through here before any storage access.
func JWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		jwtSecret := viper.GetString("JWT_SECRET")

		cookie, err := c.Cookie(AuthCookieName)
		if err != nil || cookie.Value == "" {
			return rejectUnauthenticated(c, apperrors.ErrCodeTokenMissing, "Missing authentication token.")
		}

		tokenString := cookie.Value

		// Check if the token has the correct number of segments
		if len(strings.Split(tokenString, ".")) != 3 {
			return rejectUnauthenticated(c, apperrors.ErrCodeTokenInvalid, "Malformed token.")
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			return rejectUnauthenticated(c, apperrors.ErrCodeTokenExpired, "Invalid or expired token.")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return rejectUnauthenticated(c, apperrors.ErrCodeTokenInvalid, "Invalid token claims.")
		}

		userIDClaim, ok := claims["user_id"].(float64)
		if !ok {
			return rejectUnauthenticated(c, apperrors.ErrCodeTokenInvalid, "Invalid token claims.")
		}
		userID := int64(userIDClaim)

		emailClaim, _ := claims["email"].(string)

		// Set user claims in the context for downstream handlers
		c.Set("user_id", userID)
		c.Set("email", emailClaim)

		// Validate token_version against the database so bumped versions
		// (logout, password change) revoke outstanding tokens.
		if tokenVersionClaim, ok := claims["token_version"]; ok {
			claimVersion := int64(tokenVersionClaim.(float64))
			var dbVersion int64
			err := config.DB.QueryRow("SELECT token_version FROM users WHERE id = ?", userID).Scan(&dbVersion)
			if err != nil {
				if err == sql.ErrNoRows {
					return rejectUnauthenticated(c, apperrors.ErrCodeTokenInvalid, "User not found.")
				}
				logger.Get().WithComponent("auth").Error("Failed to check token version", err, logger.UserID(userID))
				return apperrors.RespondWithError(c, apperrors.NewInternal(
					apperrors.ErrCodeDatabaseError,
					"Internal server error.",
					err,
				))
			}
			if claimVersion != dbVersion {
				return rejectUnauthenticated(c, apperrors.ErrCodeSessionRevoked, "Session revoked. Please login again.")
			}
		}

		return next(c)
	}
}

// NoStoreMiddleware marks responses as uncacheable. Applied to the whole
// admin group so editor state is always read fresh.
func NoStoreMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "no-store")
		return next(c)
	}
}
