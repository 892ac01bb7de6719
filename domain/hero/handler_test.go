package hero

import (
	"encoding/json"
	"fmt"
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

func setupHeroTest(t *testing.T) {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
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
	`)
	require.NoError(t, err)

	config.DB = db
}

func doSave(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/hero", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(1))

	require.NoError(t, SaveHandler(c))
	return rec
}

func doGet(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/hero", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, GetHandler(c))
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) State {
	t.Helper()
	var state State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

func TestGetHandlerEmptySection(t *testing.T) {
	setupHeroTest(t)

	rec := doGet(t)

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Nil(t, state.Header)
	assert.Empty(t, state.Stats)
}

func TestSaveHandlerCreatesHeaderAndStats(t *testing.T) {
	setupHeroTest(t)

	rec := doSave(t, `{
		"header": {
			"title_en": "Growing Somalia's Future",
			"subtitle_en": "Family farms.",
			"cta_label_en": "Explore",
			"cta_url": "/products"
		},
		"stats": [
			{"label_en": "Hectares farmed", "value": "120+"},
			{"label_en": "Harvests per year", "value": "3"}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)

	require.NotNil(t, state.Header)
	assert.NotZero(t, state.Header.ID)
	assert.Equal(t, "Growing Somalia's Future", state.Header.TitleEn)

	require.Len(t, state.Stats, 2)
	assert.NotZero(t, state.Stats[0].ID)
	assert.Equal(t, 0, state.Stats[0].DisplayOrder)
	assert.Equal(t, 1, state.Stats[1].DisplayOrder)
}

func TestSaveHandlerReconcilesStats(t *testing.T) {
	setupHeroTest(t)

	first := decodeState(t, doSave(t, `{
		"header": {"title_en": "Hero"},
		"stats": [
			{"label_en": "Hectares", "value": "120+"},
			{"label_en": "Harvests", "value": "3"}
		]
	}`))
	require.Len(t, first.Stats, 2)

	// Keep the first stat (renamed), drop the second, add a new one.
	body := fmt.Sprintf(`{
		"header": {"title_en": "Hero"},
		"stats": [
			{"id": %d, "label_en": "Hectares farmed", "value": "150+"},
			{"label_en": "Families", "value": "40"}
		]
	}`, first.Stats[0].ID)

	second := decodeState(t, doSave(t, body))
	require.Len(t, second.Stats, 2)

	assert.Equal(t, first.Stats[0].ID, second.Stats[0].ID)
	assert.Equal(t, "Hectares farmed", second.Stats[0].LabelEn)
	assert.Equal(t, "150+", second.Stats[0].Value)

	assert.Equal(t, "Families", second.Stats[1].LabelEn)
	assert.NotEqual(t, first.Stats[1].ID, second.Stats[1].ID)

	var dropped int
	require.NoError(t, config.DB.Get(&dropped, "SELECT COUNT(*) FROM hero_stats WHERE id = ?", first.Stats[1].ID))
	assert.Zero(t, dropped)
}

func TestSaveHandlerKeepsSingletonHeader(t *testing.T) {
	setupHeroTest(t)

	first := decodeState(t, doSave(t, `{"header": {"title_en": "One"}}`))
	second := decodeState(t, doSave(t, `{"header": {"title_en": "Two"}}`))

	require.NotNil(t, first.Header)
	require.NotNil(t, second.Header)
	assert.Equal(t, first.Header.ID, second.Header.ID)
	assert.Equal(t, "Two", second.Header.TitleEn)

	var count int
	require.NoError(t, config.DB.Get(&count, "SELECT COUNT(*) FROM hero_headers"))
	assert.Equal(t, 1, count)
}

func TestSaveHandlerRejectsMissingEnglishTitle(t *testing.T) {
	setupHeroTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/hero", strings.NewReader(`{"header": {"title_en": "  "}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(1))

	require.NoError(t, SaveHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int
	require.NoError(t, config.DB.Get(&count, "SELECT COUNT(*) FROM hero_headers"))
	assert.Zero(t, count)
}
