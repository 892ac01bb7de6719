package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/barwaaqo-agri/be-site-backend/config"
)

func setupPublicDB(t *testing.T, schema string) {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if schema != "" {
		_, err = db.Exec(schema)
		require.NoError(t, err)
	}
	config.DB = db
}

const heroSchema = `
	CREATE TABLE hero_headers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title_en TEXT NOT NULL,
		title_so TEXT NULL,
		title_ar TEXT NULL,
		subtitle_en TEXT NOT NULL DEFAULT '',
		subtitle_so TEXT NULL,
		subtitle_ar TEXT NULL,
		cta_label_en TEXT NOT NULL DEFAULT '',
		cta_label_so TEXT NULL,
		cta_label_ar TEXT NULL,
		cta_url TEXT NOT NULL DEFAULT '',
		image_url TEXT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE hero_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label_en TEXT NOT NULL,
		label_so TEXT NULL,
		label_ar TEXT NULL,
		value TEXT NOT NULL DEFAULT '',
		emoji TEXT NULL,
		display_order INTEGER NOT NULL DEFAULT 0,
		active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const navSchema = `
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
`

func doPublicGet(t *testing.T, handler echo.HandlerFunc, lang string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	target := "/public/section"
	if lang != "" {
		target += "?lang=" + lang
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestHeroHandlerServesFallbackWhenStorageFails(t *testing.T) {
	// No tables at all: every query fails, the visitor still gets content.
	setupPublicDB(t, "")

	rec := doPublicGet(t, HeroHandler, "ar")

	require.Equal(t, http.StatusOK, rec.Code)

	var view HeroView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, fallbackHero.Title, view.Title)
	assert.Equal(t, "ar", view.Lang)
	assert.Equal(t, "rtl", view.Direction)
	assert.NotEmpty(t, view.Stats)
}

func TestHeroHandlerLocalizesWithEnglishFallback(t *testing.T) {
	setupPublicDB(t, heroSchema)

	_, err := config.DB.Exec(`
		INSERT INTO hero_headers (title_en, title_so, subtitle_en, cta_label_en, cta_url)
		VALUES ('Growing', 'Beeraha', 'Family farms.', 'Explore', '/products')
	`)
	require.NoError(t, err)
	_, err = config.DB.Exec(`
		INSERT INTO hero_stats (label_en, label_so, value, display_order)
		VALUES ('Hectares', 'Hektar', '120+', 0)
	`)
	require.NoError(t, err)

	rec := doPublicGet(t, HeroHandler, "so")
	require.Equal(t, http.StatusOK, rec.Code)

	var view HeroView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.Equal(t, "so", view.Lang)
	assert.Equal(t, "ltr", view.Direction)
	assert.Equal(t, "Beeraha", view.Title)
	// No Somali subtitle stored, English steps in.
	assert.Equal(t, "Family farms.", view.Subtitle)
	require.Len(t, view.Stats, 1)
	assert.Equal(t, "Hektar", view.Stats[0].Label)
}

func TestHeroHandlerSkipsInactiveStats(t *testing.T) {
	setupPublicDB(t, heroSchema)

	_, err := config.DB.Exec("INSERT INTO hero_headers (title_en) VALUES ('Hero')")
	require.NoError(t, err)
	_, err = config.DB.Exec(`
		INSERT INTO hero_stats (label_en, value, display_order, active) VALUES
		('Visible', '1', 0, 1),
		('Hidden', '2', 1, 0)
	`)
	require.NoError(t, err)

	rec := doPublicGet(t, HeroHandler, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view HeroView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Stats, 1)
	assert.Equal(t, "Visible", view.Stats[0].Label)
}

func TestNavHandlerNormalizesEmptyStorage(t *testing.T) {
	setupPublicDB(t, navSchema)

	rec := doPublicGet(t, NavHandler, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view NavView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	require.Len(t, view.Languages, 3)
	assert.Equal(t, "en", view.Languages[0].Code)
	assert.True(t, view.Languages[0].Enabled)
	assert.False(t, view.Languages[1].Enabled)

	require.Len(t, view.Menu, 6)
	for _, item := range view.Menu {
		assert.True(t, item.Visible)
	}
}

func TestNavHandlerReflectsStoredSettings(t *testing.T) {
	setupPublicDB(t, navSchema)

	_, err := config.DB.Exec(`
		INSERT INTO site_languages (language_code, enabled, display_order) VALUES
		('en', 1, 0), ('so', 1, 1), ('ar', 0, 2)
	`)
	require.NoError(t, err)
	_, err = config.DB.Exec(`
		INSERT INTO site_menus (menu_key, visible, display_order) VALUES
		('home', 1, 0), ('gallery', 0, 3)
	`)
	require.NoError(t, err)

	rec := doPublicGet(t, NavHandler, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view NavView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.True(t, view.Languages[1].Enabled) // so
	byKey := make(map[string]bool)
	for _, m := range view.Menu {
		byKey[m.Key] = m.Visible
	}
	assert.True(t, byKey["home"])
	assert.False(t, byKey["gallery"])
	assert.True(t, byKey["news"]) // synthesized default
}
