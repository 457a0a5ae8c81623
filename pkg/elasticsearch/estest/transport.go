// Package estest provides a canned HTTP transport for exercising the
// Elasticsearch client without a cluster.
package estest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
)

// HandlerFunc answers one request.
type HandlerFunc func(req *http.Request, body []byte) (*http.Response, error)

// Transport is an http.RoundTripper that records requests and delegates
// answers to Handler.
type Transport struct {
	Handler HandlerFunc

	mu       sync.Mutex
	requests []Request
}

// Request is a recorded request.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// New returns a Transport answering with h.
func New(h HandlerFunc) *Transport {
	return &Transport{Handler: h}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}

	t.mu.Lock()
	t.requests = append(t.requests, Request{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.RawQuery,
		Body:   body,
	})
	t.mu.Unlock()

	res, err := t.Handler(req, body)
	if res != nil {
		res.Request = req
	}
	return res, err
}

// Requests returns a copy of the recorded requests.
func (t *Transport) Requests() []Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Request, len(t.requests))
	copy(out, t.requests)
	return out
}

// Last returns the most recent request.
func (t *Transport) Last() Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return Request{}
	}
	return t.requests[len(t.requests)-1]
}

// Respond builds a response carrying the product header the client checks.
func Respond(status int, body any) *http.Response {
	var raw []byte
	switch b := body.(type) {
	case nil:
		raw = []byte("{}")
	case string:
		raw = []byte(b)
	case []byte:
		raw = b
	default:
		raw, _ = json.Marshal(b)
	}

	h := http.Header{}
	h.Set("X-Elastic-Product", "Elasticsearch")
	h.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     h,
		Body:       io.NopCloser(bytes.NewReader(raw)),
	}
}

// ErrorBody builds the error envelope Elasticsearch returns.
func ErrorBody(status int, typ, reason string) map[string]any {
	return map[string]any{
		"error":  map[string]any{"type": typ, "reason": reason},
		"status": status,
	}
}
