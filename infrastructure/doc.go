// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, HTTP communication, logging and push notifications.
//
// The infrastructure package is organized by technical concern:
//
// - storage/sqlite: SQLite-backed document store, the default backend
// - storage/memory: In-memory store for development and tests
// - storage/redis: Redis-based store for shared deployments
// - http/standard: Standard library HTTP client with retry logic
// - logger/structured: logrus-backed structured logger
// - notifier/ntfy: ntfy.sh push notifier
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Production-ready: Include retries, timeouts, and error handling
//
// # Storage Implementations
//
// SQLite Example:
//
//	store, err := sqlite.NewClient("mangawatch.db")
//	defer store.Close()
//
// Redis Example:
//
//	store, err := redis.NewClient(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// All storage backends persist the same three JSON documents under the
// keys "items", "settings" and "ledger", and report a missing key with
// interfaces.ErrKeyNotFound.
package infrastructure
