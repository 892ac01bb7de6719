package contact

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/domain/content"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
	"github.com/barwaaqo-agri/be-site-backend/pkg/mailer"
)

const infoTable = "contact_info"

// GetHandler returns the contact section for the admin editor.
func GetHandler(c echo.Context) error {
	log := logger.Get().WithComponent("contact")

	var info Info
	err := config.DB.Get(&info, "SELECT * FROM contact_info WHERE active = 1 ORDER BY id LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusOK, map[string]interface{}{"info": nil})
		}
		return content.DBError(c, log, "Failed to load contact info", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"info": info})
}

// SaveHandler upserts the singleton contact info row.
func SaveHandler(c echo.Context) error {
	log := logger.Get().WithComponent("contact").WithUserID(c.Get("user_id").(int64))

	req := new(InfoInput)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if strings.TrimSpace(req.AddressEn) == "" || strings.TrimSpace(req.Email) == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"English address and contact email are required.",
		))
	}

	err := content.SaveSection(content.SectionContact, func(tx *sqlx.Tx) error {
		_, err := content.UpsertSingleton(tx, infoTable, req.fields())
		return err
	})
	if err != nil {
		return content.DBError(c, log, "Failed to save contact info", err)
	}

	log.Info("Contact info saved")

	var info Info
	if err := config.DB.Get(&info, "SELECT * FROM contact_info WHERE active = 1 ORDER BY id LIMIT 1"); err != nil {
		return content.DBError(c, log, "Failed to reload contact info after save", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"info": info})
}

// SubmitMessageHandler stores an inbound message from the public contact form
// and sends a best-effort notification email. Rate limited per IP.
func SubmitMessageHandler(c echo.Context) error {
	log := logger.Get().WithComponent("contact")

	req := new(MessageRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Name, email and message are required.",
		))
	}
	if !strings.Contains(req.Email, "@") {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidEmail,
			"Please enter a valid email address.",
		))
	}

	_, err := config.DB.Exec(`
		INSERT INTO contact_messages (name, email, phone, body, read_flag, created_at)
		VALUES (?, ?, ?, ?, 0, CURRENT_TIMESTAMP)
	`, req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return content.DBError(c, log, "Failed to store contact message", err)
	}

	phone := ""
	if req.Phone != nil {
		phone = *req.Phone
	}
	// Notification failure must not fail the visitor's submission.
	go mailer.Notify("New contact message from "+req.Name,
		mailer.FormatContactMessage(req.Name, req.Email, phone, req.Message))

	log.Info("Contact message received", logger.Email(req.Email))
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// ListMessagesHandler returns inbound messages for the admin inbox,
// newest first.
func ListMessagesHandler(c echo.Context) error {
	log := logger.Get().WithComponent("contact")

	messages := []Message{}
	if err := config.DB.Select(&messages, "SELECT * FROM contact_messages ORDER BY created_at DESC, id DESC"); err != nil {
		return content.DBError(c, log, "Failed to list contact messages", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": messages})
}

// MarkMessageReadHandler flags a message as read.
func MarkMessageReadHandler(c echo.Context) error {
	log := logger.Get().WithComponent("contact")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid message id.",
		))
	}

	res, err := config.DB.Exec("UPDATE contact_messages SET read_flag = 1 WHERE id = ?", id)
	if err != nil {
		return content.DBError(c, log, "Failed to mark message read", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.RespondWithError(c, apperrors.NewNotFound(
			apperrors.ErrCodeMessageNotFound,
			"Message not found.",
		))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// DeleteMessageHandler removes a message from the inbox.
func DeleteMessageHandler(c echo.Context) error {
	log := logger.Get().WithComponent("contact").WithUserID(c.Get("user_id").(int64))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid message id.",
		))
	}

	res, err := config.DB.Exec("DELETE FROM contact_messages WHERE id = ?", id)
	if err != nil {
		return content.DBError(c, log, "Failed to delete contact message", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.RespondWithError(c, apperrors.NewNotFound(
			apperrors.ErrCodeMessageNotFound,
			"Message not found.",
		))
	}

	log.Info("Contact message deleted", logger.ItemID(id))
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
