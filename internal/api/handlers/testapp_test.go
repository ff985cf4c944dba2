package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"recipe-book/internal/utils/storage"
	"recipe-book/views"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// fiberApp wraps a fiber.App wired the same way the real application is,
// with request helpers for the tests.
type fiberApp struct {
	App *fiber.App
}

func newFiberApp(mediaRoot string) *fiberApp {
	app := fiber.New(fiber.Config{
		Views: views.NewEngine(),
	})
	app.Static(storage.PublicMediaPrefix, mediaRoot)
	return &fiberApp{App: app}
}

func (a *fiberApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := a.App.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func (a *fiberApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err := a.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (a *fiberApp) postJSON(t *testing.T, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := a.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}
