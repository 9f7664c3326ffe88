package handler

import (
	"net/http"

	"github.com/knagata/partstrack/internal/entities"
	"github.com/knagata/partstrack/internal/middleware"
	"github.com/knagata/partstrack/internal/services/sessiontoken"
	"github.com/knagata/partstrack/internal/storage"
	"github.com/knagata/partstrack/internal/templates"
	"github.com/knagata/partstrack/internal/userstore"
	"go.uber.org/zap"
)

type Handler struct {
	storage storage.Storage
	users   userstore.Store
	tokens  *sessiontoken.Manager
}

func NewHandler(storage storage.Storage, users userstore.Store, tokens *sessiontoken.Manager) *Handler {
	return &Handler{
		storage: storage,
		users:   users,
		tokens:  tokens,
	}
}

func (h *Handler) getIdentityFromReqContext(req *http.Request) entities.Identity {
	identity, _ := middleware.IdentityFromContext(req.Context())
	return identity
}

func (h *Handler) render(res http.ResponseWriter, name string, data any) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.Render(res, name, data); err != nil {
		zap.L().Info("cannot render template", zap.String("template", name), zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
	}
}
