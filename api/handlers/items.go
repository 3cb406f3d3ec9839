// ABOUTME: Tracked-item handlers for the Huma API
// ABOUTME: Registration, deregistration, flags and listing endpoints

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"mangawatch/api/dto/mappers"
	"mangawatch/api/dto/requests"
	"mangawatch/api/dto/responses"
	"mangawatch/core/domain"
)

// ItemService defines the methods the item handlers need from the tracker
type ItemService interface {
	Register(ctx context.Context, item domain.TrackedItem) (*domain.TrackedItem, error)
	Deregister(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	ListItems(ctx context.Context) ([]domain.TrackedItem, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	ToggleNotify(ctx context.Context, id string, enabled bool) error
}

// ItemHandler handles tracked-item HTTP requests
type ItemHandler struct {
	service ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(service ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers all item-related routes
func (h *ItemHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "registerItem",
		Method:      http.MethodPost,
		Path:        "/items",
		Summary:     "Register a tracked item",
		Description: "Upserts an already-extracted record into the item store",
		Tags:        []string{"Items"},
	}, h.RegisterItem)

	huma.Register(api, huma.Operation{
		OperationID: "deregisterItem",
		Method:      http.MethodDelete,
		Path:        "/items/{id}",
		Summary:     "Deregister a tracked item",
		Description: "Removes the item and cascades removal to its ledger entries",
		Tags:        []string{"Items"},
	}, h.DeregisterItem)

	huma.Register(api, huma.Operation{
		OperationID: "itemExists",
		Method:      http.MethodGet,
		Path:        "/items/{id}/exists",
		Summary:     "Check whether an item is tracked",
		Tags:        []string{"Items"},
	}, h.ItemExists)

	huma.Register(api, huma.Operation{
		OperationID: "listItems",
		Method:      http.MethodGet,
		Path:        "/items",
		Summary:     "List all tracked items",
		Tags:        []string{"Items"},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID: "markItemRead",
		Method:      http.MethodPost,
		Path:        "/items/{id}/read",
		Summary:     "Mark one item's update as read",
		Tags:        []string{"Items"},
	}, h.MarkRead)

	huma.Register(api, huma.Operation{
		OperationID: "markAllRead",
		Method:      http.MethodPost,
		Path:        "/read-all",
		Summary:     "Mark every item and ledger entry as read",
		Tags:        []string{"Items"},
	}, h.MarkAllRead)

	huma.Register(api, huma.Operation{
		OperationID: "toggleItemNotify",
		Method:      http.MethodPost,
		Path:        "/items/{id}/notify",
		Summary:     "Toggle per-item notifications",
		Tags:        []string{"Items"},
	}, h.ToggleNotify)
}

// RegisterItemInput defines the input for the RegisterItem operation
type RegisterItemInput struct {
	Body requests.RegisterItemRequest
}

// RegisterItemOutput defines the output for the RegisterItem operation
type RegisterItemOutput struct {
	Body responses.ItemResponse
}

// RegisterItem handles POST /items
func (h *ItemHandler) RegisterItem(ctx context.Context, input *RegisterItemInput) (*RegisterItemOutput, error) {
	input.Body.ApplyDefaults()

	item, err := h.service.Register(ctx, mappers.ToTrackedItem(&input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RegisterItemOutput{Body: *mappers.ToItemResponse(item)}, nil
}

// ItemIDInput identifies one tracked item by its composite ID
type ItemIDInput struct {
	ID string `path:"id" doc:"Composite site:slug identity"`
}

// DeregisterItem handles DELETE /items/{id}
func (h *ItemHandler) DeregisterItem(ctx context.Context, input *ItemIDInput) (*struct{}, error) {
	if err := h.service.Deregister(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// ItemExistsOutput defines the output for the ItemExists operation
type ItemExistsOutput struct {
	Body responses.ExistsResponse
}

// ItemExists handles GET /items/{id}/exists
func (h *ItemHandler) ItemExists(ctx context.Context, input *ItemIDInput) (*ItemExistsOutput, error) {
	exists, err := h.service.Exists(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ItemExistsOutput{Body: responses.ExistsResponse{Exists: exists}}, nil
}

// ListItemsOutput defines the output for the ListItems operation
type ListItemsOutput struct {
	Body responses.ListItemsResponse
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(ctx context.Context, _ *struct{}) (*ListItemsOutput, error) {
	items, err := h.service.ListItems(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListItemsOutput{Body: responses.ListItemsResponse{
		Items: mappers.ToItemResponses(items),
		Total: len(items),
	}}, nil
}

// MarkRead handles POST /items/{id}/read
func (h *ItemHandler) MarkRead(ctx context.Context, input *ItemIDInput) (*struct{}, error) {
	if err := h.service.MarkRead(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// MarkAllRead handles POST /read-all
func (h *ItemHandler) MarkAllRead(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := h.service.MarkAllRead(ctx); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// ToggleNotifyInput defines the input for the ToggleNotify operation
type ToggleNotifyInput struct {
	ID   string `path:"id" doc:"Composite site:slug identity"`
	Body requests.ToggleNotifyRequest
}

// ToggleNotify handles POST /items/{id}/notify
func (h *ItemHandler) ToggleNotify(ctx context.Context, input *ToggleNotifyInput) (*struct{}, error) {
	if err := h.service.ToggleNotify(ctx, input.ID, input.Body.Enabled); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}
