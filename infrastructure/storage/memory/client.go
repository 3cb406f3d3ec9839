// ABOUTME: In-memory key-value store backed by go-cache
// ABOUTME: Used in development and tests; contents do not survive restarts

package memory

import (
	"context"
	"errors"

	gocache "github.com/patrickmn/go-cache"

	"mangawatch/core/interfaces"
)

// Client implements the Storage interface in memory
type Client struct {
	cache *gocache.Cache
}

// NewClient creates an empty in-memory store
func NewClient() *Client {
	return &Client{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves the value stored under key
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}

	stored := value.([]byte)
	out := make([]byte, len(stored))
	copy(out, stored)
	return out, nil
}

// Set stores a copy of value under key
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	c.cache.Set(key, stored, gocache.NoExpiration)
	return nil
}

// Delete removes a key; deleting an absent key is not an error
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	c.cache.Delete(key)
	return nil
}
