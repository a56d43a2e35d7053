package httpapi

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// HandlerFunc handles a normalized request
type HandlerFunc func(ctx context.Context, req *Request) *Response

// AuthMode says whether a route requires a verified bearer token
type AuthMode int

const (
	// AuthNone means the route is public
	AuthNone AuthMode = iota
	// AuthRequired means the route needs a valid bearer token
	AuthRequired
)

// Route is one entry in the route table: an exact method plus a path pattern
// whose ":name" segments capture path parameters.
type Route struct {
	Method  string
	Pattern string
	Handler HandlerFunc
	Auth    AuthMode

	// Role, when set, additionally requires the principal to hold this role
	Role string
}

// Authenticator verifies a bearer token and resolves its principal. Every
// verification failure must look the same to the caller.
type Authenticator interface {
	Authenticate(token string) (*Principal, error)
}

// Router dispatches normalized requests against an explicit route table.
// Matching is deterministic: first route in table order wins, so literal
// segments ("/storefronts/mine") are listed before parameter captures
// ("/storefronts/:id").
type Router struct {
	routes []Route
	auth   Authenticator
	log    *logrus.Entry
}

// NewRouter creates a router over the given table
func NewRouter(auth Authenticator, routes []Route) *Router {
	return &Router{
		routes: routes,
		auth:   auth,
		log:    logrus.WithField("component", "router"),
	}
}

// Dispatch routes one request. Pre-flight OPTIONS requests are answered 200
// unconditionally; unmatched requests get 404.
func (rt *Router) Dispatch(ctx context.Context, req *Request) *Response {
	if req.Method == http.MethodOptions {
		return JSON(http.StatusOK, map[string]string{})
	}

	for _, route := range rt.routes {
		if route.Method != req.Method {
			continue
		}
		params, ok := matchPattern(route.Pattern, req.Path)
		if !ok {
			continue
		}
		req.PathParams = params

		if route.Auth == AuthRequired {
			if resp := rt.authenticate(req, route); resp != nil {
				return resp
			}
		}

		return route.Handler(ctx, req)
	}

	return Error(http.StatusNotFound, "Not found")
}

// authenticate verifies the bearer token and role requirement for a route.
// Returns nil when the request may proceed.
func (rt *Router) authenticate(req *Request, route Route) *Response {
	token, ok := req.BearerToken()
	if !ok {
		return Error(http.StatusUnauthorized, "Authorization header with bearer token is required")
	}

	principal, err := rt.auth.Authenticate(token)
	if err != nil {
		rt.log.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.Path,
		}).WithError(err).Warn("Token verification failed")
		return Error(http.StatusUnauthorized, "Invalid or expired token")
	}

	if route.Role != "" && principal.Role != route.Role {
		rt.log.WithFields(logrus.Fields{
			"account_id":    principal.AccountID,
			"role":          principal.Role,
			"required_role": route.Role,
			"path":          req.Path,
		}).Warn("Authorization failed - insufficient role")
		return Error(http.StatusForbidden, "Insufficient permissions")
	}

	req.Principal = principal
	return nil
}

// matchPattern matches a path against a pattern segment by segment. ":name"
// segments capture into the returned parameter map.
func matchPattern(pattern, path string) (map[string]string, bool) {
	patternParts := splitPath(pattern)
	pathParts := splitPath(path)
	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	params := map[string]string{}
	for i, part := range patternParts {
		if strings.HasPrefix(part, ":") {
			params[part[1:]] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

// ServeHTTP adapts the router onto net/http so the local server can mount it
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}

	query := map[string]string{}
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			query[k] = vs[0]
		}
	}

	req := &Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: headers,
		Query:   query,
		Body:    body,
	}

	resp := rt.Dispatch(r.Context(), req)
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}
