package httpclient

import (
	"context"
	"net/http"
)

// Request is a transport-level HTTP request.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	Header() http.Header
}

// DecodedResponse is implemented by responses whose transport already decoded
// the body into structured data.
type DecodedResponse interface {
	Response
	Decoded() (any, bool)
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Do(ctx context.Context, req *Request) (Response, error)
}
