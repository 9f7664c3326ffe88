package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/knagata/partstrack/internal/entities"
	"github.com/knagata/partstrack/internal/middleware"
	"github.com/knagata/partstrack/internal/services/sessiontoken"
	"github.com/knagata/partstrack/internal/storage"
	"github.com/knagata/partstrack/internal/userstore"
	"github.com/stretchr/testify/require"
)

// fakeStorage is an in-memory stand-in for the Postgres storage. It mirrors
// the storage contract, including the sentinel errors and the transition
// semantics, so handler tests exercise the real decision paths.
type fakeStorage struct {
	ordered  map[string]entities.OrderedPart
	received map[string]entities.ReceivedPart

	failWith error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		ordered:  make(map[string]entities.OrderedPart),
		received: make(map[string]entities.ReceivedPart),
	}
}

func (f *fakeStorage) CreateOrderedPart(_ context.Context, part entities.OrderedPart) error {
	if f.failWith != nil {
		return f.failWith
	}

	f.ordered[part.OrderNumber] = part
	return nil
}

func (f *fakeStorage) GetOrderedPart(_ context.Context, orderNumber string) (entities.OrderedPart, error) {
	part, ok := f.ordered[orderNumber]
	if !ok {
		return entities.OrderedPart{}, storage.ErrNoRows
	}
	return part, nil
}

func (f *fakeStorage) ListOrderedParts(_ context.Context) ([]entities.OrderedPart, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	parts := make([]entities.OrderedPart, 0, len(f.ordered))
	for _, part := range f.ordered {
		parts = append(parts, part)
	}
	return parts, nil
}

func (f *fakeStorage) DeleteOrderedPart(_ context.Context, orderNumber string) error {
	if f.failWith != nil {
		return f.failWith
	}

	delete(f.ordered, orderNumber)
	return nil
}

func (f *fakeStorage) ReceiveOrderedPart(_ context.Context, orderNumber string, receivedDate time.Time) error {
	if f.failWith != nil {
		return f.failWith
	}

	part, ok := f.ordered[orderNumber]
	if !ok {
		return storage.ErrNoRows
	}

	if receivedDate.Before(part.OrderDate) {
		return storage.ErrReceiptBeforeOrder
	}

	if _, ok := f.received[orderNumber]; ok {
		return storage.ErrAlreadyReceived
	}

	f.received[orderNumber] = entities.ReceivedPart{
		OrderNumber:  part.OrderNumber,
		PartNumber:   part.PartNumber,
		PartName:     part.PartName,
		Quantity:     part.Quantity,
		OrderDate:    part.OrderDate,
		SupplierName: part.SupplierName,
		DataLocation: part.DataLocation,
		Remarks:      part.Remarks,
		ReceivedDate: receivedDate,
		OrderedBy:    part.OrderedBy,
	}
	delete(f.ordered, orderNumber)

	return nil
}

func (f *fakeStorage) ListReceivedParts(_ context.Context) ([]entities.ReceivedPart, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	parts := make([]entities.ReceivedPart, 0, len(f.received))
	for _, part := range f.received {
		parts = append(parts, part)
	}
	return parts, nil
}

func (f *fakeStorage) DeleteReceivedPart(_ context.Context, orderNumber string) error {
	if f.failWith != nil {
		return f.failWith
	}

	delete(f.received, orderNumber)
	return nil
}

func (f *fakeStorage) Now(_ context.Context) (time.Time, error) {
	if f.failWith != nil {
		return time.Time{}, f.failWith
	}

	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), nil
}

func newTestHandler(t *testing.T, fake *fakeStorage) *Handler {
	t.Helper()

	users := userstore.NewInMemory()
	require.NoError(t, users.Add("order_mgr", "order123", entities.RoleOrder))
	require.NoError(t, users.Add("inspect_mgr", "inspect123", entities.RoleInspect))

	return NewHandler(fake, users, sessiontoken.NewManager("test-secret"))
}

func newFormRequest(path string, form url.Values, identity *entities.Identity) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if identity != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey{}, *identity))
	}

	return req
}

func orderIdentity() *entities.Identity {
	return &entities.Identity{Username: "order_mgr", Role: entities.RoleOrder}
}

// flashMessage extracts the message the handler left for the next page.
func flashMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name != "flash" || cookie.MaxAge < 0 {
			continue
		}

		message, err := base64.URLEncoding.DecodeString(cookie.Value)
		require.NoError(t, err)
		return string(message)
	}

	return ""
}

func date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func samplePart(t *testing.T) entities.OrderedPart {
	return entities.OrderedPart{
		OrderNumber:  "PO-1001",
		PartNumber:   "PN-77",
		PartName:     "bearing",
		Quantity:     "40",
		OrderDate:    date(t, "2026-08-01"),
		SupplierName: "Acme Parts",
		DataLocation: "shelf-3",
		Remarks:      "rush",
		OrderedBy:    "order_mgr",
	}
}
