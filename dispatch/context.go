package dispatch

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// Context is the ambient request context injected into methods that declare a
// context parameter. It never travels on the wire: each transport adapter
// reconstructs it from its own envelope (HTTP headers, process environment for
// the CLI) before dispatch.
type Context struct {
	// RequestID uniquely identifies the request, generated when the
	// transport did not supply one.
	RequestID string
	// UserID identifies the authenticated caller, empty when anonymous.
	UserID string

	metadata map[string]string
}

// NewContext returns an empty ambient context with a fresh request ID.
func NewContext() *Context {
	return &Context{
		RequestID: uuid.NewString(),
		metadata:  make(map[string]string),
	}
}

// ContextFromHeaders builds an ambient context from HTTP-style headers.
// X-Request-Id and X-User-Id populate the identity fields; every other header
// is kept as metadata under its lowercased name.
func ContextFromHeaders(headers map[string]string) *Context {
	c := NewContext()
	for name, val := range headers {
		switch strings.ToLower(name) {
		case "x-request-id":
			if val != "" {
				c.RequestID = val
			}
		case "x-user-id":
			c.UserID = val
		default:
			c.metadata[strings.ToLower(name)] = val
		}
	}
	return c
}

// ContextFromEnv builds an ambient context from the process environment, the
// source CLI invocations use. FACET_REQUEST_ID and FACET_USER_ID populate the
// identity fields; FACET_META_* variables become metadata entries keyed by the
// lowercased suffix.
func ContextFromEnv() *Context {
	c := NewContext()
	if v := os.Getenv("FACET_REQUEST_ID"); v != "" {
		c.RequestID = v
	}
	c.UserID = os.Getenv("FACET_USER_ID")
	for _, kv := range os.Environ() {
		name, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "FACET_META_") {
			continue
		}
		c.metadata[strings.ToLower(strings.TrimPrefix(name, "FACET_META_"))] = val
	}
	return c
}

// Get returns the metadata value stored under key, or "".
func (c *Context) Get(key string) string {
	return c.metadata[strings.ToLower(key)]
}

// Set stores a metadata value under the lowercased key.
func (c *Context) Set(key, val string) {
	if c.metadata == nil {
		c.metadata = make(map[string]string)
	}
	c.metadata[strings.ToLower(key)] = val
}

// Metadata returns a copy of the metadata map.
func (c *Context) Metadata() map[string]string {
	out := make(map[string]string, len(c.metadata))
	for k, v := range c.metadata {
		out[k] = v
	}
	return out
}
