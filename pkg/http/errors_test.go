package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	e := NewAppError("ERR_RESOLUTION", "quote resolution failed", http.StatusInternalServerError)
	require.Equal(t, "quote resolution failed", e.Error())

	cause := errors.New("context canceled")
	wrapped := e.WithError(cause)
	require.Equal(t, "quote resolution failed: context canceled", wrapped.Error())
	require.ErrorIs(t, wrapped, cause)
}

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestAppErrorResponse(t *testing.T) {
	c, rec := newTestContext(t)

	appErr := NewAppError("ERR_RESOLUTION", "search resolution failed", http.StatusInternalServerError)
	require.NoError(t, AppErrorResponse(c, fmt.Errorf("handler: %w", appErr)))

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, http.StatusInternalServerError, resp.Status)

	payload := resp.Data.([]interface{})
	require.Len(t, payload, 1)
	got := payload[0].(map[string]interface{})
	require.Equal(t, "ERR_RESOLUTION", got["code"])
	require.Equal(t, "search resolution failed", got["message"])
}

func TestAppErrorResponseUnknownError(t *testing.T) {
	c, rec := newTestContext(t)

	require.NoError(t, AppErrorResponse(c, errors.New("not an app error")))

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, http.StatusInternalServerError, resp.Status)
	require.Equal(t, "Something went wrong", resp.Data)
}
