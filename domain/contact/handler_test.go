package contact

import (
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

func setupContactDB(t *testing.T) {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE contact_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NULL,
			body TEXT NOT NULL,
			read_flag INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	require.NoError(t, err)
	config.DB = db
}

func submitMessage(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/public/contact/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, SubmitMessageHandler(c))
	return rec
}

func TestSubmitMessageStoresRow(t *testing.T) {
	setupContactDB(t)

	rec := submitMessage(t, `{
		"name": "Ayaan",
		"email": "ayaan@example.com",
		"phone": "+252610000000",
		"message": "Do you deliver to Hargeisa?"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var msg Message
	require.NoError(t, config.DB.Get(&msg, "SELECT * FROM contact_messages LIMIT 1"))
	assert.Equal(t, "Ayaan", msg.Name)
	assert.Equal(t, "ayaan@example.com", msg.Email)
	assert.Equal(t, "Do you deliver to Hargeisa?", msg.Body)
	assert.False(t, msg.ReadFlag)
}

func TestSubmitMessageRequiresFields(t *testing.T) {
	setupContactDB(t)

	rec := submitMessage(t, `{"name": "", "email": "", "message": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int
	require.NoError(t, config.DB.Get(&count, "SELECT COUNT(*) FROM contact_messages"))
	assert.Zero(t, count)
}

func TestSubmitMessageRejectsBadEmail(t *testing.T) {
	setupContactDB(t)

	rec := submitMessage(t, `{"name": "Ayaan", "email": "not-an-email", "message": "hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkMessageReadNotFound(t *testing.T) {
	setupContactDB(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/messages/99/read", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, MarkMessageReadHandler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkMessageRead(t *testing.T) {
	setupContactDB(t)

	_, err := config.DB.Exec(`
		INSERT INTO contact_messages (name, email, body) VALUES ('Ayaan', 'a@b.so', 'hello')
	`)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/admin/messages/1/read", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, MarkMessageReadHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var read bool
	require.NoError(t, config.DB.Get(&read, "SELECT read_flag FROM contact_messages WHERE id = 1"))
	assert.True(t, read)
}
