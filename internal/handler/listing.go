package handler

import (
	"fmt"
	"net/http"

	"github.com/knagata/partstrack/internal/services/flash"
	"github.com/knagata/partstrack/internal/templates"
	"go.uber.org/zap"
)

func (h *Handler) OrderList(res http.ResponseWriter, req *http.Request) {
	parts, err := h.storage.ListOrderedParts(req.Context())
	if err != nil {
		zap.L().Info("error listing ordered parts", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.render(res, "order_list.html", templates.OrderListData{
		Flash: flash.Pop(res, req),
		Parts: parts,
	})
}

func (h *Handler) DeleteOrder(res http.ResponseWriter, req *http.Request) {
	orderNumber := req.FormValue("order_number")

	if err := h.storage.DeleteOrderedPart(req.Context(), orderNumber); err != nil {
		zap.L().Info("error deleting ordered part", zap.Error(err))

		flash.Set(res, fmt.Sprintf("Database error: %v", err))
		http.Redirect(res, req, "/order_list", http.StatusFound)
		return
	}

	flash.Set(res, fmt.Sprintf("Order number %q has been deleted.", orderNumber))
	http.Redirect(res, req, "/order_list", http.StatusFound)
}

func (h *Handler) UninspectedParts(res http.ResponseWriter, req *http.Request) {
	parts, err := h.storage.ListReceivedParts(req.Context())
	if err != nil {
		zap.L().Info("error listing received parts", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.render(res, "uninspected_parts.html", templates.UninspectedData{
		Flash: flash.Pop(res, req),
		Parts: parts,
	})
}

func (h *Handler) DeleteReceivedPart(res http.ResponseWriter, req *http.Request) {
	orderNumber := req.FormValue("order_number")

	if err := h.storage.DeleteReceivedPart(req.Context(), orderNumber); err != nil {
		zap.L().Info("error deleting received part", zap.Error(err))

		flash.Set(res, fmt.Sprintf("Database error: %v", err))
		http.Redirect(res, req, "/uninspected_parts", http.StatusFound)
		return
	}

	flash.Set(res, "The selected record has been deleted.")
	http.Redirect(res, req, "/uninspected_parts", http.StatusFound)
}
