// Package core contains the business logic for the Mangawatch service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (TrackedItem, UpdateEntry, Settings, etc.)
// - extract: Per-site chapter extraction with a two-tier Madara strategy
// - tracker: Item store, update ledger, settings and the check cycle
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (storage, HTTP, logger, notifier)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "mangawatch/core/extract"
//	    "mangawatch/core/interfaces"
//	    "mangawatch/core/tracker"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Storage:    myStorage,    // implements interfaces.Storage
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    Notifier:   myNotifier,   // implements interfaces.Notifier
//	}
//
//	// Create services
//	registry := extract.NewRegistry()
//	extractService := extract.NewService(deps, registry)
//	trackerService := tracker.NewService(deps, extractService, 2*time.Second)
//
//	// Run one check cycle
//	stats, err := trackerService.RunCheckCycle(ctx)
package core
