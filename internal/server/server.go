package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/knagata/partstrack/internal/config"
	"github.com/knagata/partstrack/internal/handler"
	"github.com/knagata/partstrack/internal/services/sessiontoken"
	"github.com/knagata/partstrack/internal/storage"
	"github.com/knagata/partstrack/internal/userstore"
	"go.uber.org/zap"
)

type Server struct {
	config  config.Config
	mux     chi.Router
	server  *http.Server
	storage storage.Storage
	users   userstore.Store
	tokens  *sessiontoken.Manager
}

func NewServer(config config.Config, storage storage.Storage, users userstore.Store, tokens *sessiontoken.Manager) *Server {
	mux := chi.NewMux()

	return &Server{
		config:  config,
		mux:     mux,
		storage: storage,
		users:   users,
		tokens:  tokens,
		server: &http.Server{
			Addr:              config.Address,
			Handler:           mux,
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      5 * time.Second,
			IdleTimeout:       5 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	s.setupRoutes(handler.NewHandler(s.storage, s.users, s.tokens))

	zap.L().Info("starting server", zap.String("address", s.config.Address))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error starting server: %w", err)
	}

	return nil
}

func (s *Server) Stop() error {
	zap.L().Info("stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error stopping server: %w", err)
	}

	return nil
}
