package user

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
	"github.com/barwaaqo-agri/be-site-backend/utils"
)

// ListHandler returns all editor accounts.
func ListHandler(c echo.Context) error {
	log := logger.Get().WithComponent("user")

	var users []User
	err := config.DB.Select(&users, "SELECT * FROM users ORDER BY created_at ASC, id ASC")
	if err != nil {
		log.Error("Failed to list users", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if users == nil {
		users = []User{}
	}
	return c.JSON(http.StatusOK, users)
}

// CreateHandler creates a new editor account.
func CreateHandler(c echo.Context) error {
	log := logger.Get().WithComponent("user").WithUserID(c.Get("user_id").(int64))

	req := new(CreateUserRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidEmail,
			"A valid email is required.",
		))
	}
	if len(req.Password) < 8 {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidPassword,
			"Password must be at least 8 characters.",
		))
	}

	var existing int
	err := config.DB.Get(&existing, "SELECT COUNT(*) FROM users WHERE email = ?", req.Email)
	if err != nil {
		log.Error("Failed to check for existing user", err, logger.Email(req.Email))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if existing > 0 {
		return apperrors.RespondWithError(c, apperrors.NewConflict(
			apperrors.ErrCodeResourceExists,
			"A user with this email already exists.",
		))
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Error("Failed to hash password", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Internal server error.",
			err,
		))
	}

	result, err := config.DB.Exec(`
		INSERT INTO users (email, name, password, verified, token_version, created_at, updated_at)
		VALUES (?, ?, ?, 1, 0, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, req.Email, req.Name, hashed)
	if err != nil {
		log.Error("Failed to create user", err, logger.Email(req.Email))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	id, _ := result.LastInsertId()
	log.Info("User created", logger.Email(req.Email), logger.Int64("created_id", id))

	var created User
	if err := config.DB.Get(&created, "SELECT * FROM users WHERE id = ?", id); err != nil {
		log.Error("Failed to reload created user", err, logger.Int64("created_id", id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusCreated, created)
}

// DeleteHandler removes an editor account. Deleting your own account is
// rejected so the admin panel cannot lock everyone out.
func DeleteHandler(c echo.Context) error {
	log := logger.Get().WithComponent("user").WithUserID(c.Get("user_id").(int64))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid user id.",
		))
	}

	if id == c.Get("user_id").(int64) {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"You cannot delete your own account.",
		))
	}

	result, err := config.DB.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		log.Error("Failed to delete user", err, logger.Int64("target_id", id))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperrors.RespondWithError(c, apperrors.NewNotFound(
			apperrors.ErrCodeUserNotFound,
			"User not found.",
		))
	}

	log.Info("User deleted", logger.Int64("target_id", id))
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted."})
}

// ChangePasswordHandler updates the caller's password and bumps token_version
// so every other session is revoked.
func ChangePasswordHandler(c echo.Context) error {
	userID := c.Get("user_id").(int64)
	log := logger.Get().WithComponent("user").WithUserID(userID)

	req := new(ChangePasswordRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}
	if len(req.NewPassword) < 8 {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidPassword,
			"New password must be at least 8 characters.",
		))
	}

	var current struct {
		Password     string `db:"password"`
		TokenVersion int64  `db:"token_version"`
	}
	err := config.DB.Get(&current, "SELECT password, token_version FROM users WHERE id = ?", userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeUserNotFound,
				"User not found.",
			))
		}
		log.Error("Failed to fetch user for password change", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, current.Password) {
		return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
			apperrors.ErrCodeInvalidCredentials,
			"Current password is incorrect.",
		))
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Error("Failed to hash new password", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Internal server error.",
			err,
		))
	}

	_, err = config.DB.Exec(`
		UPDATE users
		SET password = ?, token_version = token_version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, hashed, userID)
	if err != nil {
		log.Error("Failed to update password", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Password changed")
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated. Please login again."})
}
