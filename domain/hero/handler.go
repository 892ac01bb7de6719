package hero

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
	headerTable = "hero_headers"
	statsTable  = "hero_stats"
)

// GetHandler returns the current hero section for the admin editor.
func GetHandler(c echo.Context) error {
	state, err := loadState()
	if err != nil {
		return content.DBError(c, logger.Get().WithComponent("hero"), "Failed to load hero state", err)
	}
	return c.JSON(http.StatusOK, state)
}

// SaveHandler applies a full-document save: singleton header upsert plus
// collection reconciliation for the stats, in one transaction.
func SaveHandler(c echo.Context) error {
	log := logger.Get().WithComponent("hero").WithUserID(c.Get("user_id").(int64))

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
	for _, stat := range req.Stats {
		if strings.TrimSpace(stat.LabelEn) == "" {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeMissingField,
				"Every stat needs an English label.",
			))
		}
	}

	// Array position is authoritative for ordering; rewrite display_order
	// before anything touches storage.
	for i := range req.Stats {
		req.Stats[i].DisplayOrder = i
	}

	err := content.SaveSection(content.SectionHero, func(tx *sqlx.Tx) error {
		if req.Header != nil {
			if _, err := content.UpsertSingleton(tx, headerTable, req.Header.fields()); err != nil {
				return err
			}
		}
		if req.Stats != nil {
			return content.ReconcileCollection(tx, statsTable, req.Stats)
		}
		return nil
	})
	if err != nil {
		return content.DBError(c, log, "Failed to save hero section", err)
	}

	log.Info("Hero section saved", logger.Count(len(req.Stats)))

	state, err := loadState()
	if err != nil {
		return content.DBError(c, log, "Failed to reload hero state after save", err)
	}
	return c.JSON(http.StatusOK, state)
}

func loadState() (*State, error) {
	state := &State{Stats: []Stat{}}

	var header Header
	err := config.DB.Get(&header, "SELECT * FROM hero_headers WHERE active = 1 ORDER BY id LIMIT 1")
	if err == nil {
		state.Header = &header
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err := config.DB.Select(&state.Stats, "SELECT * FROM hero_stats ORDER BY display_order ASC, id ASC"); err != nil {
		return nil, err
	}
	return state, nil
}
