// ABOUTME: Manual check cycle trigger for the Huma API
// ABOUTME: Runs the same cycle the scheduler runs, on demand

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"mangawatch/api/dto/responses"
	"mangawatch/core/tracker"
)

// CheckService defines the methods the check handler needs
type CheckService interface {
	RunCheckCycle(ctx context.Context) (tracker.CycleStats, error)
}

// CheckHandler handles manual check cycle requests
type CheckHandler struct {
	service CheckService
}

// NewCheckHandler creates a new check handler
func NewCheckHandler(service CheckService) *CheckHandler {
	return &CheckHandler{service: service}
}

// RegisterRoutes registers the check route
func (h *CheckHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "runCheckCycle",
		Method:      http.MethodPost,
		Path:        "/check",
		Summary:     "Run a check cycle now",
		Description: "Re-checks every tracked item sequentially, paced per item",
		Tags:        []string{"Check"},
	}, h.RunCheckCycle)
}

// RunCheckCycleOutput defines the output for the RunCheckCycle operation
type RunCheckCycleOutput struct {
	Body responses.CheckCycleResponse
}

// RunCheckCycle handles POST /check
func (h *CheckHandler) RunCheckCycle(ctx context.Context, _ *struct{}) (*RunCheckCycleOutput, error) {
	stats, err := h.service.RunCheckCycle(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RunCheckCycleOutput{Body: responses.CheckCycleResponse{
		Checked:  stats.Checked,
		Updates:  stats.Updates,
		Failures: stats.Failures,
		Unread:   stats.Unread,
	}}, nil
}
