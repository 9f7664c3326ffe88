package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/knagata/partstrack/internal/services/flash"
	"github.com/knagata/partstrack/internal/storage"
	"github.com/knagata/partstrack/internal/templates"
	"go.uber.org/zap"
)

func (h *Handler) ReceiveForm(res http.ResponseWriter, req *http.Request) {
	h.render(res, "received_form.html", templates.FormData{Flash: flash.Pop(res, req)})
}

func (h *Handler) SubmitReceipt(res http.ResponseWriter, req *http.Request) {
	orderNumber := strings.TrimSpace(req.FormValue("order_number"))
	receivedDate := strings.TrimSpace(req.FormValue("received_date"))

	if orderNumber == "" || receivedDate == "" {
		flash.Set(res, "Both the order number and the received date are required.")
		http.Redirect(res, req, "/receive", http.StatusFound)
		return
	}

	receivedDateValue, err := time.Parse(dateLayout, receivedDate)
	if err != nil {
		flash.Set(res, "The received date is not a valid date.")
		http.Redirect(res, req, "/receive", http.StatusFound)
		return
	}

	if err := h.storage.ReceiveOrderedPart(req.Context(), orderNumber, receivedDateValue); err != nil {
		switch {
		case errors.Is(err, storage.ErrNoRows):
			flash.Set(res, "The entered order number does not exist.")
		case errors.Is(err, storage.ErrReceiptBeforeOrder):
			flash.Set(res, "A received date earlier than the order date cannot be registered.")
		case errors.Is(err, storage.ErrAlreadyReceived):
			flash.Set(res, "This order number has already been received.")
		default:
			zap.L().Info("error receiving ordered part", zap.Error(err))

			flash.Set(res, fmt.Sprintf("Database error: %v", err))
		}

		http.Redirect(res, req, "/receive", http.StatusFound)
		return
	}

	flash.Set(res, "The receipt has been registered (the order was moved to the received data).")
	http.Redirect(res, req, "/dashboard", http.StatusFound)
}
