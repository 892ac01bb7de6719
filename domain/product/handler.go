package product

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
	headerTable   = "product_headers"
	productsTable = "products"
)

// GetHandler returns the current products section for the admin editor.
func GetHandler(c echo.Context) error {
	state, err := loadState()
	if err != nil {
		return content.DBError(c, logger.Get().WithComponent("product"), "Failed to load products state", err)
	}
	return c.JSON(http.StatusOK, state)
}

// SaveHandler applies a full-document save for the products section.
func SaveHandler(c echo.Context) error {
	log := logger.Get().WithComponent("product").WithUserID(c.Get("user_id").(int64))

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
	for _, p := range req.Products {
		if strings.TrimSpace(p.NameEn) == "" {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeMissingField,
				"Every product needs an English name.",
			))
		}
	}

	for i := range req.Products {
		req.Products[i].DisplayOrder = i
	}

	err := content.SaveSection(content.SectionProducts, func(tx *sqlx.Tx) error {
		if req.Header != nil {
			if _, err := content.UpsertSingleton(tx, headerTable, req.Header.fields()); err != nil {
				return err
			}
		}
		if req.Products != nil {
			return content.ReconcileCollection(tx, productsTable, req.Products)
		}
		return nil
	})
	if err != nil {
		return content.DBError(c, log, "Failed to save products section", err)
	}

	log.Info("Products section saved", logger.Count(len(req.Products)))

	state, err := loadState()
	if err != nil {
		return content.DBError(c, log, "Failed to reload products state after save", err)
	}
	return c.JSON(http.StatusOK, state)
}

func loadState() (*State, error) {
	state := &State{Products: []Product{}}

	var header Header
	err := config.DB.Get(&header, "SELECT * FROM product_headers WHERE active = 1 ORDER BY id LIMIT 1")
	if err == nil {
		state.Header = &header
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err := config.DB.Select(&state.Products, "SELECT * FROM products ORDER BY display_order ASC, id ASC"); err != nil {
		return nil, err
	}
	return state, nil
}
