// ABOUTME: Notifier interface for transient user-facing notifications
// ABOUTME: Fire-and-forget contract with no delivery guarantee

package interfaces

import "context"

// Notifier delivers a transient notification to the user. Implementations
// may push to an external service or do nothing at all; the caller never
// depends on delivery.
type Notifier interface {
	// Notify sends a notification with the given title, body and icon URL.
	// Errors indicate the push could not be handed off, nothing more.
	Notify(ctx context.Context, title, body, icon string) error
}
