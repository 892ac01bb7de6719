package settings

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/domain/content"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
)

// GetHandler returns the normalized language and menu settings.
func GetHandler(c echo.Context) error {
	log := logger.Get().WithComponent("settings")

	languages, menus, err := loadSettings()
	if err != nil {
		return content.DBError(c, log, "Failed to load settings", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"languages": languages,
		"menus":     menus,
	})
}

// SaveLanguagesHandler saves the full language-enablement set. Disabling the
// last enabled language is rejected here, not just in the editor, so a
// bypassing client cannot leave the site without a language.
func SaveLanguagesHandler(c echo.Context) error {
	log := logger.Get().WithComponent("settings").WithUserID(c.Get("user_id").(int64))

	req := new(LanguagesRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	enabled := 0
	for _, l := range req.Languages {
		if !isKnownLanguage(l.Code) {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeUnknownKey,
				"Unknown language code: "+l.Code,
			))
		}
		if l.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeLastLanguage,
			"At least one language must stay enabled.",
		))
	}

	// Saved under the nav section so the public nav cache is invalidated.
	err := content.SaveSection("nav", func(tx *sqlx.Tx) error {
		for i, l := range req.Languages {
			if err := upsertLanguage(tx, l.Code, l.Enabled, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return content.DBError(c, log, "Failed to save language settings", err)
	}

	log.Info("Language settings saved", logger.Count(len(req.Languages)))

	languages, menus, err := loadSettings()
	if err != nil {
		return content.DBError(c, log, "Failed to reload settings after save", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"languages": languages,
		"menus":     menus,
	})
}

// SaveMenusHandler saves the full menu-visibility set. The home entry must
// stay visible; that invariant is enforced server-side as well.
func SaveMenusHandler(c echo.Context) error {
	log := logger.Get().WithComponent("settings").WithUserID(c.Get("user_id").(int64))

	req := new(MenusRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	for _, m := range req.Menus {
		if !isKnownMenuKey(m.Key) {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeUnknownKey,
				"Unknown menu key: "+m.Key,
			))
		}
		if m.Key == "home" && !m.Visible {
			return apperrors.RespondWithError(c, apperrors.NewBadRequest(
				apperrors.ErrCodeHomeMenuHidden,
				"The home menu item must stay visible.",
			))
		}
	}

	err := content.SaveSection("nav", func(tx *sqlx.Tx) error {
		for i, m := range req.Menus {
			if err := upsertMenu(tx, m.Key, m.Visible, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return content.DBError(c, log, "Failed to save menu settings", err)
	}

	log.Info("Menu settings saved", logger.Count(len(req.Menus)))

	languages, menus, err := loadSettings()
	if err != nil {
		return content.DBError(c, log, "Failed to reload settings after save", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"languages": languages,
		"menus":     menus,
	})
}

func loadSettings() ([]LanguageSetting, []MenuSetting, error) {
	var languageRows []LanguageRow
	if err := config.DB.Select(&languageRows, "SELECT * FROM site_languages ORDER BY display_order ASC"); err != nil {
		return nil, nil, err
	}

	var menuRows []MenuRow
	if err := config.DB.Select(&menuRows, "SELECT * FROM site_menus ORDER BY display_order ASC"); err != nil {
		return nil, nil, err
	}

	return NormalizeLanguages(languageRows), NormalizeMenus(menuRows), nil
}

// upsertLanguage updates the row for a code or inserts it. Rows are keyed by
// language_code; existence is checked explicitly because MySQL reports zero
// affected rows on a no-change update.
func upsertLanguage(tx *sqlx.Tx, code string, enabled bool, order int) error {
	var id int64
	err := tx.Get(&id, "SELECT id FROM site_languages WHERE language_code = ?", code)
	if err == nil {
		_, err = tx.Exec(`
			UPDATE site_languages
			SET enabled = ?, display_order = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, enabled, order, id)
		return err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO site_languages (language_code, enabled, display_order, created_at, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, code, enabled, order)
	return err
}

func upsertMenu(tx *sqlx.Tx, key string, visible bool, order int) error {
	var id int64
	err := tx.Get(&id, "SELECT id FROM site_menus WHERE menu_key = ?", key)
	if err == nil {
		_, err = tx.Exec(`
			UPDATE site_menus
			SET visible = ?, display_order = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, visible, order, id)
		return err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO site_menus (menu_key, visible, display_order, created_at, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, key, visible, order)
	return err
}
