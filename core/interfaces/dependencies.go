// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external collaborators required by the core
// business logic
type Dependencies struct {
	// Storage provides the persistent key-value store
	Storage Storage

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Notifier delivers update notifications; may be a noop
	Notifier Notifier
}
