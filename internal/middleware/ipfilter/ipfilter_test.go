package ipfilter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, allowed []string, remoteAddr, forwardedFor string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/productos", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := AllowIPs(allowed)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec, called
}

func TestAllowIPs_Allowed(t *testing.T) {
	rec, called := doRequest(t, []string{"10.0.0.5"}, "10.0.0.5:4321", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAllowIPs_Denied(t *testing.T) {
	rec, called := doRequest(t, []string{"10.0.0.5"}, "10.0.0.9:4321", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "Acceso denegado: IP no permitida")
}

func TestAllowIPs_ForwardedFor(t *testing.T) {
	rec, called := doRequest(t, []string{"10.0.0.5"}, "172.16.0.1:4321", "10.0.0.5")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
