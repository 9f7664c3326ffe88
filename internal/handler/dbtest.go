package handler

import (
	"fmt"
	"net/http"
	"time"
)

// DBTest reports storage connectivity as plain text. Intentionally
// unauthenticated; it exists so an operator can poke the database wiring.
func (h *Handler) DBTest(res http.ResponseWriter, req *http.Request) {
	now, err := h.storage.Now(req.Context())

	res.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(res, "database connection failed: %v\n", err)
		return
	}

	fmt.Fprintf(res, "database connection OK, current time: %s\n", now.Format(time.RFC3339))
}
