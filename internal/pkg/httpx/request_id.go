// Package httpx holds outbound HTTP plumbing shared by all service adapters.
package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderXRequestID is the header carrying the per-request correlation ID.
const HeaderXRequestID = "X-Request-Id"

// RequestIDTransport stamps every outbound request with an X-Request-Id
// header unless the caller already set one, so a single user action can be
// followed across the gateway and the backend services.
type RequestIDTransport struct {
	Base http.RoundTripper
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Header.Get(HeaderXRequestID) == "" {
		// Per RoundTripper contract the request must not be mutated in place.
		req = req.Clone(req.Context())
		req.Header.Set(HeaderXRequestID, uuid.NewString())
	}
	return base.RoundTrip(req)
}
