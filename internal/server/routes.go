package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/knagata/partstrack/internal/entities"
	"github.com/knagata/partstrack/internal/handler"
	"github.com/knagata/partstrack/internal/middleware"
)

func (s *Server) setupRoutes(handler *handler.Handler) {
	s.setupMiddleware()

	s.mux.Get("/", http.HandlerFunc(handler.Home))
	s.mux.Get("/login", http.HandlerFunc(handler.LoginForm))
	s.mux.Post("/login", http.HandlerFunc(handler.Login))
	s.mux.Get("/logout", http.HandlerFunc(handler.Logout))
	s.mux.Get("/db_test", http.HandlerFunc(handler.DBTest))

	s.mux.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin)

		r.Get("/dashboard", http.HandlerFunc(handler.Dashboard))
	})

	s.mux.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleOrder))

		r.Get("/order", http.HandlerFunc(handler.OrderForm))
		r.Post("/submit_order", http.HandlerFunc(handler.SubmitOrder))

		r.Get("/receive", http.HandlerFunc(handler.ReceiveForm))
		r.Post("/submit_receipt", http.HandlerFunc(handler.SubmitReceipt))

		r.Get("/order_list", http.HandlerFunc(handler.OrderList))
		r.Post("/delete_order", http.HandlerFunc(handler.DeleteOrder))

		r.Get("/uninspected_parts", http.HandlerFunc(handler.UninspectedParts))
		r.Post("/delete_received_part", http.HandlerFunc(handler.DeleteReceivedPart))
	})
}

func (s *Server) setupMiddleware() {
	s.mux.Use(
		middleware.Logger,
		middleware.Authenticate(s.tokens),
	)
}
