package auth

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/middleware"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
	"github.com/barwaaqo-agri/be-site-backend/utils"
)

// LoginHandler authenticates an editor and sets the session cookie. Failed
// attempts are counted per email and lock the account for a few minutes once
// the threshold is reached.
func LoginHandler(c echo.Context) error {
	log := logger.Get().WithComponent("auth")
	log = log.WithRequestID(logger.GetRequestIDFromContext(c))

	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		log.Warn("Invalid login request payload", logger.Err(err))
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Email and password are required.",
		))
	}

	now := time.Now()

	type attemptsInfo struct {
		FailedAttempts int          `db:"failed_attempts"`
		BlockedUntil   sql.NullTime `db:"blocked_until"`
	}
	var attempts attemptsInfo

	err := config.DB.Get(&attempts, `
		SELECT failed_attempts, blocked_until
		FROM user_login_attempts
		WHERE username = ?
	`, req.Email)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Error("Failed to fetch login attempts", err, logger.Email(req.Email))
			return apperrors.RespondWithError(c, apperrors.NewInternal(
				apperrors.ErrCodeDatabaseError,
				"Internal server error.",
				err,
			))
		}
		_, err = config.DB.Exec(`
			INSERT INTO user_login_attempts (username, failed_attempts, last_attempt_time)
			VALUES (?, 0, ?)
		`, req.Email, now)
		if err != nil {
			log.Error("Failed to insert initial login attempts record", err, logger.Email(req.Email))
			return apperrors.RespondWithError(c, apperrors.NewInternal(
				apperrors.ErrCodeDatabaseError,
				"Internal server error.",
				err,
			))
		}
	}

	if attempts.BlockedUntil.Valid && attempts.BlockedUntil.Time.After(now) {
		remaining := attempts.BlockedUntil.Time.Sub(now)
		log.Warn("Login attempt while account locked", logger.Email(req.Email))
		return apperrors.RespondWithError(c, apperrors.NewTooManyRequests(
			apperrors.ErrCodeAccountLocked,
			fmt.Sprintf("Account temporarily locked. Please try again in %d minutes and %d seconds.",
				int(remaining.Minutes()), int(remaining.Seconds())%60),
		))
	}

	// Block period over: start counting fresh.
	if attempts.BlockedUntil.Valid && attempts.BlockedUntil.Time.Before(now) {
		_, err = config.DB.Exec(`
			UPDATE user_login_attempts
			SET failed_attempts = 0, blocked_until = NULL
			WHERE username = ?
		`, req.Email)
		if err != nil {
			log.Error("Failed to reset login attempts after block period", err, logger.Email(req.Email))
			return apperrors.RespondWithError(c, apperrors.NewInternal(
				apperrors.ErrCodeDatabaseError,
				"Internal server error.",
				err,
			))
		}
		attempts.FailedAttempts = 0
	}

	var user User
	err = config.DB.Get(&user, "SELECT id, email, name, password, token_version FROM users WHERE email = ?", req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return handleFailedAttempt(c, log, req.Email, attempts.FailedAttempts, now)
		}
		log.Error("Failed to fetch user", err, logger.Email(req.Email))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return handleFailedAttempt(c, log, req.Email, attempts.FailedAttempts, now)
	}

	_, err = config.DB.Exec(`
		UPDATE user_login_attempts
		SET failed_attempts = 0, blocked_until = NULL
		WHERE username = ?
	`, req.Email)
	if err != nil {
		log.Error("Failed to reset login attempts on success", err, logger.Email(req.Email))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	token, err := utils.GenerateAccessToken(user.ID, user.Email, user.TokenVersion)
	if err != nil {
		log.Error("Failed to generate session token", err, logger.UserID(user.ID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Internal server error.",
			err,
		))
	}

	setAuthCookie(c, token, now.Add(SessionDuration))

	_, err = config.DB.Exec("UPDATE users SET last_login = ? WHERE id = ?", now, user.ID)
	if err != nil {
		log.Warn("Failed to update last login time", logger.UserID(user.ID), logger.Err(err))
	}

	log.Info("User logged in", logger.UserID(user.ID), logger.Email(user.Email))

	return c.JSON(http.StatusOK, LoginResponse{
		User: UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}

// LogoutHandler invalidates every outstanding session for the user by bumping
// token_version, then clears the cookie.
func LogoutHandler(c echo.Context) error {
	log := logger.Get().WithComponent("auth")
	userID := c.Get("user_id").(int64)
	log = log.WithUserID(userID)

	_, err := config.DB.Exec("UPDATE users SET token_version = token_version + 1 WHERE id = ?", userID)
	if err != nil {
		log.Error("Failed to bump token version on logout", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	clearAuthCookie(c)
	log.Info("User logged out")
	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully logged out."})
}

// MeHandler returns the authenticated editor, for session checks on page load.
func MeHandler(c echo.Context) error {
	log := logger.Get().WithComponent("auth")
	userID := c.Get("user_id").(int64)

	var user User
	err := config.DB.Get(&user, "SELECT id, email, name, password, token_version FROM users WHERE id = ?", userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
				apperrors.ErrCodeTokenInvalid,
				"User not found.",
			))
		}
		log.Error("Failed to fetch current user", err, logger.UserID(userID))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, UserResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

func setAuthCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   viper.GetBool("COOKIE_SECURE"),
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   viper.GetBool("COOKIE_SECURE"),
		SameSite: http.SameSiteLaxMode,
	})
}

func handleFailedAttempt(c echo.Context, log logger.Logger, email string, currentAttempts int, now time.Time) error {
	newAttempts := currentAttempts + 1

	if newAttempts >= LockoutThreshold {
		blockedUntil := now.Add(LockoutDuration)
		_, err := config.DB.Exec(`
			UPDATE user_login_attempts
			SET failed_attempts = ?, last_attempt_time = ?, blocked_until = ?
			WHERE username = ?
		`, newAttempts, now, blockedUntil, email)
		if err != nil {
			log.Error("Failed to update login attempts on block", err, logger.Email(email))
		}

		log.Warn("Account locked after repeated failed attempts",
			logger.Email(email),
			logger.Int("attempts", newAttempts),
		)
		return apperrors.RespondWithError(c, apperrors.NewTooManyRequests(
			apperrors.ErrCodeAccountLocked,
			"Too many failed login attempts. Account locked for 5 minutes.",
		))
	}

	_, err := config.DB.Exec(`
		UPDATE user_login_attempts
		SET failed_attempts = ?, last_attempt_time = ?
		WHERE username = ?
	`, newAttempts, now, email)
	if err != nil {
		log.Error("Failed to update login attempts", err, logger.Email(email))
	}

	log.Debug("Failed login attempt", logger.Email(email), logger.Int("attempts", newAttempts))

	return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
		apperrors.ErrCodeInvalidCredentials,
		"Invalid email or password.",
	))
}
