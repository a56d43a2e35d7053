// Package httpapi defines the transport-neutral HTTP contract: a normalized
// request type constructed once at the boundary, a JSON response type that
// always carries permissive CORS headers, and an explicit route table. Both
// the Lambda entrypoint and the local server dispatch through it.
package httpapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Principal is the identity carried by a verified bearer token
type Principal struct {
	AccountID string
	Email     string
	Role      string
}

// Request is the normalized inbound request. Adapters fill it from their
// native event shape exactly once; nothing downstream looks at the transport.
type Request struct {
	Method     string
	Path       string
	Headers    map[string]string
	Query      map[string]string
	PathParams map[string]string
	Body       []byte

	// Principal is set by the router after token verification on routes
	// that require authentication.
	Principal *Principal
}

// Header returns a header value by case-insensitive name
func (r *Request) Header(name string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func (r *Request) BearerToken() (string, bool) {
	header := r.Header("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Bind unmarshals the JSON request body into v
func (r *Request) Bind(v interface{}) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("request body is empty")
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
