// ABOUTME: Settings handlers for the Huma API
// ABOUTME: Reads are defaults-merged; writes are partial updates

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"mangawatch/api/dto/mappers"
	"mangawatch/api/dto/requests"
	"mangawatch/api/dto/responses"
	"mangawatch/core/domain"
	"mangawatch/core/tracker"
)

// SettingsService defines the methods the settings handlers need
type SettingsService interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, patch tracker.SettingsPatch) (domain.Settings, error)
}

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	service SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// RegisterRoutes registers the settings routes
func (h *SettingsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSettings",
		Method:      http.MethodGet,
		Path:        "/settings",
		Summary:     "Get current settings",
		Tags:        []string{"Settings"},
	}, h.GetSettings)

	huma.Register(api, huma.Operation{
		OperationID: "saveSettings",
		Method:      http.MethodPatch,
		Path:        "/settings",
		Summary:     "Update settings",
		Description: "Applies a partial update; omitted fields keep their values",
		Tags:        []string{"Settings"},
	}, h.SaveSettings)
}

// SettingsOutput defines the output for settings operations
type SettingsOutput struct {
	Body responses.SettingsResponse
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(ctx context.Context, _ *struct{}) (*SettingsOutput, error) {
	settings, err := h.service.GetSettings(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SettingsOutput{Body: mappers.ToSettingsResponse(settings)}, nil
}

// SaveSettingsInput defines the input for the SaveSettings operation
type SaveSettingsInput struct {
	Body requests.SaveSettingsRequest
}

// SaveSettings handles PATCH /settings
func (h *SettingsHandler) SaveSettings(ctx context.Context, input *SaveSettingsInput) (*SettingsOutput, error) {
	settings, err := h.service.SaveSettings(ctx, tracker.SettingsPatch{
		CheckIntervalMinutes: input.Body.CheckIntervalMinutes,
		NotificationsEnabled: input.Body.NotificationsEnabled,
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SettingsOutput{Body: mappers.ToSettingsResponse(settings)}, nil
}
