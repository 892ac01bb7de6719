package mission

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
	headerTable = "mission_headers"
	valuesTable = "mission_values"
)

// GetHandler returns the current mission section for the admin editor.
func GetHandler(c echo.Context) error {
	state, err := loadState()
	if err != nil {
		return content.DBError(c, logger.Get().WithComponent("mission"), "Failed to load mission state", err)
	}
	return c.JSON(http.StatusOK, state)
}

// SaveHandler applies a full-document save for the mission section.
func SaveHandler(c echo.Context) error {
	log := logger.Get().WithComponent("mission").WithUserID(c.Get("user_id").(int64))

	req := new(SaveRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.Header != nil && strings.TrimSpace(req.Header.TitleEn) == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"English title is required.",
		))
	}
	for _, value := range req.Values {
		if strings.TrimSpace(value.TitleEn) == "" {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeMissingField,
				"Every value card needs an English title.",
			))
		}
	}

	for i := range req.Values {
		req.Values[i].DisplayOrder = i
	}

	err := content.SaveSection(content.SectionMission, func(tx *sqlx.Tx) error {
		if req.Header != nil {
			if _, err := content.UpsertSingleton(tx, headerTable, req.Header.fields()); err != nil {
				return err
			}
		}
		if req.Values != nil {
			return content.ReconcileCollection(tx, valuesTable, req.Values)
		}
		return nil
	})
	if err != nil {
		return content.DBError(c, log, "Failed to save mission section", err)
	}

	log.Info("Mission section saved", logger.Count(len(req.Values)))

	state, err := loadState()
	if err != nil {
		return content.DBError(c, log, "Failed to reload mission state after save", err)
	}
	return c.JSON(http.StatusOK, state)
}

func loadState() (*State, error) {
	state := &State{Values: []Value{}}

	var header Header
	err := config.DB.Get(&header, "SELECT * FROM mission_headers WHERE active = 1 ORDER BY id LIMIT 1")
	if err == nil {
		state.Header = &header
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err := config.DB.Select(&state.Values, "SELECT * FROM mission_values ORDER BY display_order ASC, id ASC"); err != nil {
		return nil, err
	}
	return state, nil
}
