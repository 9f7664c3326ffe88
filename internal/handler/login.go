package handler

import (
	"errors"
	"net/http"

	"github.com/knagata/partstrack/internal/entities"
	"github.com/knagata/partstrack/internal/middleware"
	"github.com/knagata/partstrack/internal/services/flash"
	"github.com/knagata/partstrack/internal/templates"
	"github.com/knagata/partstrack/internal/userstore"
	"go.uber.org/zap"
)

// Home routes a browser to wherever it belongs: dashboard when a valid
// session exists, login otherwise.
func (h *Handler) Home(res http.ResponseWriter, req *http.Request) {
	if _, ok := middleware.IdentityFromContext(req.Context()); ok {
		http.Redirect(res, req, "/dashboard", http.StatusFound)
		return
	}

	http.Redirect(res, req, "/login", http.StatusFound)
}

func (h *Handler) LoginForm(res http.ResponseWriter, req *http.Request) {
	h.render(res, "login.html", templates.LoginData{})
}

func (h *Handler) Login(res http.ResponseWriter, req *http.Request) {
	username := req.FormValue("username")
	password := req.FormValue("password")

	user, err := h.users.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, userstore.ErrInvalidCredentials) {
			zap.L().Info("error authenticating user", zap.Error(err))
		}

		h.render(res, "login.html", templates.LoginData{
			Error: "Login failed: the username or password is incorrect.",
		})
		return
	}

	accessToken, err := h.tokens.Generate(entities.Identity{Username: user.Username, Role: user.Role})
	if err != nil {
		zap.L().Info("error generating session token", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.SetCookie(res, &http.Cookie{
		Name:  middleware.TokenCookieName,
		Value: accessToken,
		Path:  "/",
	})

	http.Redirect(res, req, "/dashboard", http.StatusFound)
}

func (h *Handler) Logout(res http.ResponseWriter, req *http.Request) {
	http.SetCookie(res, &http.Cookie{
		Name:   middleware.TokenCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	http.Redirect(res, req, "/login", http.StatusFound)
}

func (h *Handler) Dashboard(res http.ResponseWriter, req *http.Request) {
	identity := h.getIdentityFromReqContext(req)

	h.render(res, "dashboard.html", templates.DashboardData{
		Username: identity.Username,
		Role:     identity.Role,
		Flash:    flash.Pop(res, req),
	})
}
