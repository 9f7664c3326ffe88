package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/knagata/partstrack/internal/entities"
	"github.com/knagata/partstrack/internal/services/flash"
	"github.com/knagata/partstrack/internal/templates"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func (h *Handler) OrderForm(res http.ResponseWriter, req *http.Request) {
	h.render(res, "order_form.html", templates.FormData{Flash: flash.Pop(res, req)})
}

func (h *Handler) SubmitOrder(res http.ResponseWriter, req *http.Request) {
	identity := h.getIdentityFromReqContext(req)

	orderNumber := strings.TrimSpace(req.FormValue("order_number"))
	partNumber := strings.TrimSpace(req.FormValue("part_number"))
	partName := strings.TrimSpace(req.FormValue("part_name"))
	quantity := strings.TrimSpace(req.FormValue("quantity"))
	orderDate := strings.TrimSpace(req.FormValue("order_date"))
	supplierName := strings.TrimSpace(req.FormValue("supplier_name"))
	dataLocation := strings.TrimSpace(req.FormValue("data_location"))
	remarks := strings.TrimSpace(req.FormValue("remarks"))

	// Every blank required field is reported at once, not just the first.
	var missingFields []string
	if orderNumber == "" {
		missingFields = append(missingFields, "order number")
	}
	if partNumber == "" {
		missingFields = append(missingFields, "part number")
	}
	if partName == "" {
		missingFields = append(missingFields, "part name")
	}
	if quantity == "" {
		missingFields = append(missingFields, "quantity")
	}
	if orderDate == "" {
		missingFields = append(missingFields, "order date")
	}
	if supplierName == "" {
		missingFields = append(missingFields, "supplier")
	}
	if dataLocation == "" {
		missingFields = append(missingFields, "data location")
	}

	if len(missingFields) > 0 {
		flash.Set(res, fmt.Sprintf(
			"The following fields are missing: %s. Please fill in all of them.",
			strings.Join(missingFields, ", "),
		))
		http.Redirect(res, req, "/order", http.StatusFound)
		return
	}

	orderDateValue, err := time.Parse(dateLayout, orderDate)
	if err != nil {
		flash.Set(res, "The order date is not a valid date.")
		http.Redirect(res, req, "/order", http.StatusFound)
		return
	}

	part := entities.OrderedPart{
		OrderNumber:  orderNumber,
		PartNumber:   partNumber,
		PartName:     partName,
		Quantity:     quantity,
		OrderDate:    orderDateValue,
		SupplierName: supplierName,
		DataLocation: dataLocation,
		Remarks:      remarks,
		OrderedBy:    identity.Username,
	}

	if err := h.storage.CreateOrderedPart(req.Context(), part); err != nil {
		zap.L().Info("error creating ordered part", zap.Error(err))

		flash.Set(res, fmt.Sprintf("Database error: %v", err))
		http.Redirect(res, req, "/dashboard", http.StatusFound)
		return
	}

	flash.Set(res, "The order has been saved.")
	http.Redirect(res, req, "/dashboard", http.StatusFound)
}
