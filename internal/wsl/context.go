package wsl

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/rjdinis/mqlpath/internal/types"
)

const (
	keyUser   = "user"
	keyDistro = "distro"
)

// ContextCache answers user and distribution queries by running external
// commands once per process. Concurrent first calls share a single
// lookup. Failed lookups are not remembered, so the next call retries.
type ContextCache struct {
	client *Client
	group  singleflight.Group

	mu     sync.RWMutex
	values map[string]string
}

// ContextOption preseeds a ContextCache.
type ContextOption func(*ContextCache)

// WithUser fixes the user name so whoami is never run.
func WithUser(name string) ContextOption {
	return func(c *ContextCache) {
		if name != "" {
			c.values[keyUser] = name
		}
	}
}

// WithDistro fixes the distribution name so wsl.exe is never queried.
func WithDistro(name string) ContextOption {
	return func(c *ContextCache) {
		if name != "" {
			c.values[keyDistro] = name
		}
	}
}

// NewContextCache creates a cache backed by client.
func NewContextCache(client *Client, opts ...ContextOption) *ContextCache {
	c := &ContextCache{
		client: client,
		values: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserName returns the output of whoami, run inside WSL when the client
// passes commands through wsl.exe.
func (c *ContextCache) UserName() (string, error) {
	return c.lookup(keyUser, func() (string, error) {
		out, err := c.client.Run("whoami")
		if err != nil {
			return "", err
		}
		return firstLine(out), nil
	})
}

// DistroName returns the default WSL distribution.
func (c *ContextCache) DistroName() (string, error) {
	return c.lookup(keyDistro, func() (string, error) {
		names, err := c.client.ListDistributions()
		if err != nil {
			return "", err
		}
		if len(names) == 0 {
			return "", nil
		}
		return names[0], nil
	})
}

func (c *ContextCache) lookup(key string, query func() (string, error)) (string, error) {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		v, ok := c.values[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := query()
		if err != nil {
			return "", fmt.Errorf("%w: %s lookup failed: %v", types.ErrContextUnavailable, key, err)
		}
		if v == "" {
			return "", fmt.Errorf("%w: %s lookup returned nothing", types.ErrContextUnavailable, key)
		}

		c.mu.Lock()
		c.values[key] = v
		c.mu.Unlock()

		c.client.logger.Debug("Cached %s: %s", key, v)
		return v, nil
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
