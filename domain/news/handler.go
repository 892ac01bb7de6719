package news

import (
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/domain/content"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
)

const articlesTable = "news_articles"

// GetHandler returns all articles, published or not, for the admin editor.
func GetHandler(c echo.Context) error {
	state, err := loadState()
	if err != nil {
		return content.DBError(c, logger.Get().WithComponent("news"), "Failed to load news state", err)
	}
	return c.JSON(http.StatusOK, state)
}

// SaveHandler applies a full-document save for the news section.
func SaveHandler(c echo.Context) error {
	log := logger.Get().WithComponent("news").WithUserID(c.Get("user_id").(int64))

	req := new(SaveRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	for _, a := range req.Articles {
		if strings.TrimSpace(a.TitleEn) == "" || strings.TrimSpace(a.BodyEn) == "" {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeMissingField,
				"Every article needs an English title and body.",
			))
		}
	}

	for i := range req.Articles {
		req.Articles[i].DisplayOrder = i
	}

	err := content.SaveSection(content.SectionNews, func(tx *sqlx.Tx) error {
		return content.ReconcileCollection(tx, articlesTable, req.Articles)
	})
	if err != nil {
		return content.DBError(c, log, "Failed to save news section", err)
	}

	log.Info("News section saved", logger.Count(len(req.Articles)))

	state, err := loadState()
	if err != nil {
		return content.DBError(c, log, "Failed to reload news state after save", err)
	}
	return c.JSON(http.StatusOK, state)
}

func loadState() (*State, error) {
	state := &State{Articles: []Article{}}
	if err := config.DB.Select(&state.Articles, "SELECT * FROM news_articles ORDER BY display_order ASC, id ASC"); err != nil {
		return nil, err
	}
	return state, nil
}
