package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/barwaaqo-agri/be-site-backend/config"
)

func setupSettingsDB(t *testing.T) {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE site_languages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			language_code TEXT NOT NULL UNIQUE,
			enabled INTEGER NOT NULL DEFAULT 0,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE site_menus (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			menu_key TEXT NOT NULL UNIQUE,
			visible INTEGER NOT NULL DEFAULT 1,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	require.NoError(t, err)
	config.DB = db
}

func doSettingsPut(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(1))

	require.NoError(t, handler(c))
	return rec
}

func settingsErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	code, _ := body["error"].(string)
	return code
}

func TestSaveLanguagesRejectsDisablingAll(t *testing.T) {
	setupSettingsDB(t)

	rec := doSettingsPut(t, SaveLanguagesHandler, `{
		"languages": [
			{"code": "en", "enabled": false},
			{"code": "so", "enabled": false},
			{"code": "ar", "enabled": false}
		]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SETTINGS_LAST_LANGUAGE_ENABLED", settingsErrorCode(t, rec))

	var count int
	require.NoError(t, config.DB.Get(&count, "SELECT COUNT(*) FROM site_languages"))
	assert.Zero(t, count)
}

func TestSaveLanguagesRejectsUnknownCode(t *testing.T) {
	setupSettingsDB(t)

	rec := doSettingsPut(t, SaveLanguagesHandler, `{
		"languages": [{"code": "fr", "enabled": true}]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SETTINGS_UNKNOWN_KEY", settingsErrorCode(t, rec))
}

func TestSaveLanguagesPersistsAndNormalizes(t *testing.T) {
	setupSettingsDB(t)

	rec := doSettingsPut(t, SaveLanguagesHandler, `{
		"languages": [
			{"code": "en", "enabled": true},
			{"code": "so", "enabled": true},
			{"code": "ar", "enabled": false}
		]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Languages []LanguageSetting `json:"languages"`
		Menus     []MenuSetting     `json:"menus"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Languages, 3)
	assert.True(t, resp.Languages[1].Enabled)
	// Menus were never saved; the response still carries the full default set.
	require.Len(t, resp.Menus, 6)

	// Saving again flips so off without duplicating rows.
	rec = doSettingsPut(t, SaveLanguagesHandler, `{
		"languages": [
			{"code": "en", "enabled": true},
			{"code": "so", "enabled": false},
			{"code": "ar", "enabled": false}
		]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int
	require.NoError(t, config.DB.Get(&count, "SELECT COUNT(*) FROM site_languages"))
	assert.Equal(t, 3, count)
}

func TestSaveMenusRejectsHidingHome(t *testing.T) {
	setupSettingsDB(t)

	rec := doSettingsPut(t, SaveMenusHandler, `{
		"menus": [
			{"key": "home", "visible": false},
			{"key": "about", "visible": true}
		]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SETTINGS_HOME_MENU_REQUIRED", settingsErrorCode(t, rec))

	var count int
	require.NoError(t, config.DB.Get(&count, "SELECT COUNT(*) FROM site_menus"))
	assert.Zero(t, count)
}

func TestSaveMenusPersists(t *testing.T) {
	setupSettingsDB(t)

	rec := doSettingsPut(t, SaveMenusHandler, `{
		"menus": [
			{"key": "home", "visible": true},
			{"key": "gallery", "visible": false}
		]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Menus []MenuSetting `json:"menus"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	byKey := make(map[string]bool)
	for _, m := range resp.Menus {
		byKey[m.Key] = m.Visible
	}
	assert.True(t, byKey["home"])
	assert.False(t, byKey["gallery"])
	assert.True(t, byKey["news"])
}
