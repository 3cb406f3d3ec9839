// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"mangawatch/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsInvalidSnapshot(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsFetch(err) {
		return huma.Error502BadGateway(err.Error())
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
