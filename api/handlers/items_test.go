package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"mangawatch/core/domain"
	coreerrors "mangawatch/core/errors"
)

// mockItemService is a mock implementation of the item service
type mockItemService struct {
	registerFunc   func(ctx context.Context, item domain.TrackedItem) (*domain.TrackedItem, error)
	deregisterFunc func(ctx context.Context, id string) error
	existsFunc     func(ctx context.Context, id string) (bool, error)
	listFunc       func(ctx context.Context) ([]domain.TrackedItem, error)

	markedRead    []string
	markedAllRead bool
	toggled       map[string]bool
}

func (m *mockItemService) Register(ctx context.Context, item domain.TrackedItem) (*domain.TrackedItem, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, item)
	}
	return &item, nil
}

func (m *mockItemService) Deregister(ctx context.Context, id string) error {
	if m.deregisterFunc != nil {
		return m.deregisterFunc(ctx, id)
	}
	return nil
}

func (m *mockItemService) Exists(ctx context.Context, id string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockItemService) ListItems(ctx context.Context) ([]domain.TrackedItem, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockItemService) MarkRead(ctx context.Context, id string) error {
	m.markedRead = append(m.markedRead, id)
	return nil
}

func (m *mockItemService) MarkAllRead(ctx context.Context) error {
	m.markedAllRead = true
	return nil
}

func (m *mockItemService) ToggleNotify(ctx context.Context, id string, enabled bool) error {
	if m.toggled == nil {
		m.toggled = make(map[string]bool)
	}
	m.toggled[id] = enabled
	return nil
}

func newItemTestAPI(t *testing.T, service *mockItemService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewItemHandler(service).RegisterRoutes(api)
	return api
}

func TestRegisterItem_ReturnsRegisteredItem(t *testing.T) {
	var received domain.TrackedItem
	service := &mockItemService{
		registerFunc: func(ctx context.Context, item domain.TrackedItem) (*domain.TrackedItem, error) {
			received = item
			return &item, nil
		},
	}
	api := newItemTestAPI(t, service)

	resp := api.Post("/items", map[string]any{
		"id":                 "madara:solo-lackey",
		"title":              "Solo Lackey",
		"url":                "https://manhuaus.com/manga/solo-lackey/",
		"latest_chapter":     "Chapter 40",
		"latest_chapter_num": 40,
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if received.ID != "madara:solo-lackey" {
		t.Errorf("service received ID %q", received.ID)
	}
	if !received.NotifyEnabled {
		t.Error("NotifyEnabled should default to true")
	}
}

func TestRegisterItem_ValidationErrorIs400(t *testing.T) {
	service := &mockItemService{
		registerFunc: func(ctx context.Context, item domain.TrackedItem) (*domain.TrackedItem, error) {
			return nil, &coreerrors.ValidationError{Field: "item", Message: "item ID cannot be empty"}
		},
	}
	api := newItemTestAPI(t, service)

	resp := api.Post("/items", map[string]any{
		"id":  "madara:x",
		"url": "https://manhuaus.com/manga/x/",
	})

	if resp.Code != 400 {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestDeregisterItem_UnknownIs404(t *testing.T) {
	service := &mockItemService{
		deregisterFunc: func(ctx context.Context, id string) error {
			return &coreerrors.NotFoundError{Resource: "item", ID: id}
		},
	}
	api := newItemTestAPI(t, service)

	resp := api.Delete("/items/madara:missing")
	if resp.Code != 404 {
		t.Errorf("status = %d, want 404", resp.Code)
	}
}

func TestItemExists(t *testing.T) {
	service := &mockItemService{
		existsFunc: func(ctx context.Context, id string) (bool, error) {
			return id == "madara:solo-lackey", nil
		},
	}
	api := newItemTestAPI(t, service)

	resp := api.Get("/items/madara:solo-lackey/exists")
	if resp.Code != 200 {
		t.Fatalf("status = %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, `"exists":true`) {
		t.Errorf("body = %s, want exists true", body)
	}

	resp = api.Get("/items/madara:other/exists")
	if body := resp.Body.String(); !strings.Contains(body, `"exists":false`) {
		t.Errorf("body = %s, want exists false", body)
	}
}

func TestListItems(t *testing.T) {
	service := &mockItemService{
		listFunc: func(ctx context.Context) ([]domain.TrackedItem, error) {
			return []domain.TrackedItem{
				{ID: "madara:a", URL: "https://manhuaus.com/manga/a/"},
				{ID: "madara:b", URL: "https://manhuaus.com/manga/b/"},
			}, nil
		},
	}
	api := newItemTestAPI(t, service)

	resp := api.Get("/items")
	if resp.Code != 200 {
		t.Fatalf("status = %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, `"total":2`) {
		t.Errorf("body = %s, want total 2", body)
	}
}

func TestMarkReadRoutes(t *testing.T) {
	service := &mockItemService{}
	api := newItemTestAPI(t, service)

	if resp := api.Post("/items/madara:x/read"); resp.Code != 204 && resp.Code != 200 {
		t.Errorf("mark read status = %d", resp.Code)
	}
	if len(service.markedRead) != 1 || service.markedRead[0] != "madara:x" {
		t.Errorf("markedRead = %v", service.markedRead)
	}

	if resp := api.Post("/read-all"); resp.Code != 204 && resp.Code != 200 {
		t.Errorf("read-all status = %d", resp.Code)
	}
	if !service.markedAllRead {
		t.Error("MarkAllRead was not called")
	}
}

func TestToggleNotify(t *testing.T) {
	service := &mockItemService{}
	api := newItemTestAPI(t, service)

	resp := api.Post("/items/madara:x/notify", map[string]any{"enabled": false})
	if resp.Code != 204 && resp.Code != 200 {
		t.Fatalf("status = %d", resp.Code)
	}
	enabled, ok := service.toggled["madara:x"]
	if !ok || enabled {
		t.Errorf("toggled = %v, want madara:x disabled", service.toggled)
	}
}
