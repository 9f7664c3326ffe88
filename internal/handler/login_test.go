package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/knagata/partstrack/internal/entities"
	"github.com/knagata/partstrack/internal/middleware"
	"github.com/knagata/partstrack/internal/services/sessiontoken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			return cookie
		}
	}

	return nil
}

func TestLoginSuccess(t *testing.T) {
	h := newTestHandler(t, newFakeStorage())

	form := url.Values{"username": {"order_mgr"}, "password": {"order123"}}
	recorder := httptest.NewRecorder()
	h.Login(recorder, newFormRequest("/login", form, nil))

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))

	cookie := sessionCookie(t, recorder)
	require.NotNil(t, cookie)

	identity, err := sessiontoken.NewManager("test-secret").Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "order_mgr", identity.Username)
	assert.Equal(t, entities.RoleOrder, identity.Role)
}

func TestLoginInspectRolePreserved(t *testing.T) {
	h := newTestHandler(t, newFakeStorage())

	form := url.Values{"username": {"inspect_mgr"}, "password": {"inspect123"}}
	recorder := httptest.NewRecorder()
	h.Login(recorder, newFormRequest("/login", form, nil))

	cookie := sessionCookie(t, recorder)
	require.NotNil(t, cookie)

	identity, err := sessiontoken.NewManager("test-secret").Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleInspect, identity.Role)
}

func TestLoginFailure(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "order_mgr", password: "wrong"},
		{name: "unknown user", username: "nobody", password: "order123"},
		{name: "empty form", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, newFakeStorage())

			form := url.Values{"username": {tt.username}, "password": {tt.password}}
			recorder := httptest.NewRecorder()
			h.Login(recorder, newFormRequest("/login", form, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "Login failed")
			assert.Nil(t, sessionCookie(t, recorder), "no session cookie on failed login")
		})
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	h := newTestHandler(t, newFakeStorage())

	recorder := httptest.NewRecorder()
	h.Logout(recorder, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	cookie := sessionCookie(t, recorder)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func TestHomeRedirects(t *testing.T) {
	h := newTestHandler(t, newFakeStorage())

	anonymous := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	h.Home(recorder, anonymous)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	loggedIn := anonymous.WithContext(context.WithValue(
		anonymous.Context(), middleware.IdentityKey{}, *orderIdentity()))
	recorder = httptest.NewRecorder()
	h.Home(recorder, loggedIn)
	assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))
}

func TestDashboardShowsIdentityAndFlash(t *testing.T) {
	h := newTestHandler(t, newFakeStorage())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey{}, *orderIdentity()))
	req.AddCookie(&http.Cookie{Name: "flash", Value: "VGhlIG9yZGVyIGhhcyBiZWVuIHNhdmVkLg=="})

	recorder := httptest.NewRecorder()
	h.Dashboard(recorder, req)

	body := recorder.Body.String()
	assert.Contains(t, body, "order_mgr")
	assert.Contains(t, body, "The order has been saved.")
}
