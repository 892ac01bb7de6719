package content

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
)

// DBError logs a storage failure and returns the uniform 500 response.
func DBError(c echo.Context, log logger.Logger, msg string, err error) error {
	log.Error(msg, err)
	return apperrors.RespondWithError(c, apperrors.NewInternal(
		apperrors.ErrCodeDatabaseError,
		"Internal server error.",
		err,
	))
}

// SaveSection runs an admin save inside a single transaction and invalidates
// the section's public cache on commit. Any error inside fn rolls everything
// back, so a failed save leaves storage exactly as it was.
func SaveSection(section string, fn func(tx *sqlx.Tx) error) error {
	tx, err := config.DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	config.InvalidateContentCache(section)
	return nil
}
