package ohmysmtp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response is what the transport got back from the service.
// BodyErr is set when the status arrived but the body could not be read.
type Response struct {
	StatusCode int
	Body       string
	BodyErr    error
}

// Transport performs the HTTP POST. Any failure to complete the exchange
// is returned as an error; the client reports it as a network error.
type Transport interface {
	Post(ctx context.Context, url string, header http.Header, body []byte) (Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, url string, header http.Header, body []byte) (Response, error)

func (f TransportFunc) Post(ctx context.Context, url string, header http.Header, body []byte) (Response, error) {
	return f(ctx, url, header, body)
}

// HTTPTransport sends requests with a standard *http.Client.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a transport with the given request timeout.
// A zero timeout relies on the context deadline only.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{client: &http.Client{Timeout: timeout}}
}

// NewHTTPTransportWithClient wraps a preconfigured client, e.g. one with a
// custom TLS config or proxy.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Post(ctx context.Context, url string, header http.Header, body []byte) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{StatusCode: resp.StatusCode, BodyErr: err}, nil
	}
	return Response{StatusCode: resp.StatusCode, Body: string(data)}, nil
}
