package gallery

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/domain/content"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
)

const (
	headerTable = "gallery_headers"
	imagesTable = "gallery_images"
)

// GetHandler returns the current gallery for the admin editor.
func GetHandler(c echo.Context) error {
	state, err := loadState()
	if err != nil {
		return content.DBError(c, logger.Get().WithComponent("gallery"), "Failed to load gallery state", err)
	}
	return c.JSON(http.StatusOK, state)
}

// SaveHandler applies a full-document save for the gallery.
func SaveHandler(c echo.Context) error {
	log := logger.Get().WithComponent("gallery").WithUserID(c.Get("user_id").(int64))

	req := new(SaveRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	// An image row without a URL renders as a broken tile; reject before
	// anything is persisted.
	for _, img := range req.Images {
		if strings.TrimSpace(img.ImageURL) == "" {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeMissingField,
				"Every gallery image needs an image URL.",
			))
		}
	}

	for i := range req.Images {
		req.Images[i].DisplayOrder = i
	}

	err := content.SaveSection(content.SectionGallery, func(tx *sqlx.Tx) error {
		if req.Header != nil {
			if _, err := content.UpsertSingleton(tx, headerTable, req.Header.fields()); err != nil {
				return err
			}
		}
		if req.Images != nil {
			return content.ReconcileCollection(tx, imagesTable, req.Images)
		}
		return nil
	})
	if err != nil {
		return content.DBError(c, log, "Failed to save gallery", err)
	}

	log.Info("Gallery saved", logger.Count(len(req.Images)))

	state, err := loadState()
	if err != nil {
		return content.DBError(c, log, "Failed to reload gallery state after save", err)
	}
	return c.JSON(http.StatusOK, state)
}

func loadState() (*State, error) {
	state := &State{Images: []Image{}}

	var header Header
	err := config.DB.Get(&header, "SELECT * FROM gallery_headers WHERE active = 1 ORDER BY id LIMIT 1")
	if err == nil {
		state.Header = &header
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err := config.DB.Select(&state.Images, "SELECT * FROM gallery_images ORDER BY display_order ASC, id ASC"); err != nil {
		return nil, err
	}
	return state, nil
}
