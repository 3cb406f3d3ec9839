// ABOUTME: Update ledger and badge handlers for the Huma API
// ABOUTME: Read-only views over detected chapter updates

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"mangawatch/api/dto/mappers"
	"mangawatch/api/dto/responses"
	"mangawatch/core/domain"
)

// LedgerService defines the methods the ledger handlers need
type LedgerService interface {
	ListLedger(ctx context.Context) ([]domain.UpdateEntry, error)
	UnreadCount(ctx context.Context) (int, error)
}

// LedgerHandler handles ledger HTTP requests
type LedgerHandler struct {
	service LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(service LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// RegisterRoutes registers the ledger routes
func (h *LedgerHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listLedger",
		Method:      http.MethodGet,
		Path:        "/ledger",
		Summary:     "List detected updates",
		Description: "Returns the bounded update ledger, newest first",
		Tags:        []string{"Ledger"},
	}, h.ListLedger)

	huma.Register(api, huma.Operation{
		OperationID: "getBadge",
		Method:      http.MethodGet,
		Path:        "/badge",
		Summary:     "Get the unread-count badge state",
		Tags:        []string{"Ledger"},
	}, h.GetBadge)
}

// ListLedgerOutput defines the output for the ListLedger operation
type ListLedgerOutput struct {
	Body responses.ListLedgerResponse
}

// ListLedger handles GET /ledger
func (h *LedgerHandler) ListLedger(ctx context.Context, _ *struct{}) (*ListLedgerOutput, error) {
	entries, err := h.service.ListLedger(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListLedgerOutput{Body: responses.ListLedgerResponse{
		Entries: mappers.ToUpdateEntryResponses(entries),
		Total:   len(entries),
	}}, nil
}

// GetBadgeOutput defines the output for the GetBadge operation
type GetBadgeOutput struct {
	Body responses.BadgeResponse
}

// GetBadge handles GET /badge
func (h *LedgerHandler) GetBadge(ctx context.Context, _ *struct{}) (*GetBadgeOutput, error) {
	count, err := h.service.UnreadCount(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetBadgeOutput{Body: responses.BadgeResponse{Unread: count}}, nil
}
