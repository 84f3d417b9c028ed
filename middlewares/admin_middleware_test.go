package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithToken(t *testing.T, token string) (error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	nextCalled := false
	handler := AdminTokenMiddleware()(func(ctx echo.Context) error {
		nextCalled = true
		return ctx.NoContent(http.StatusOK)
	})
	return handler(ctx), nextCalled
}

func TestAdminTokenMiddleware(t *testing.T) {
	t.Run("missing server token is a server fault", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "")
		err, nextCalled := callWithToken(t, "anything")
		require.Error(t, err)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("missing request token is unauthorized", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "secret")
		err, nextCalled := callWithToken(t, "")
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("wrong token is unauthorized", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "secret")
		err, nextCalled := callWithToken(t, "not-secret")
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("correct token passes through", func(t *testing.T) {
		t.Setenv("ADMIN_TOKEN", "secret")
		err, nextCalled := callWithToken(t, "secret")
		require.NoError(t, err)
		assert.True(t, nextCalled)
	})
}
