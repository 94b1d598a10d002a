package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RequestOption customises a single Request call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	method          string
	body            any
	headers         http.Header
	apiKey          string
	token           string
	skipAuthRefresh bool
}

// WithMethod sets the HTTP method, GET by default.
func WithMethod(method string) RequestOption {
	return func(o *requestOptions) {
		o.method = method
	}
}

// WithBody sets the request body. []byte, string and io.Reader are sent as is,
// any other value is JSON encoded.
func WithBody(body any) RequestOption {
	return func(o *requestOptions) {
		o.body = body
	}
}

// WithHeader sets a request header; caller headers win over defaults.
func WithHeader(name, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers.Set(name, value)
	}
}

// WithHeaders sets request headers.
func WithHeaders(headers http.Header) RequestOption {
	return func(o *requestOptions) {
		for name, values := range headers {
			o.headers.Del(name)
			for _, value := range values {
				o.headers.Add(name, value)
			}
		}
	}
}

// WithAPIKey overrides the configured API key for this call.
func WithAPIKey(apiKey string) RequestOption {
	return func(o *requestOptions) {
		o.apiKey = apiKey
	}
}

// WithToken overrides the configured bearer token for this call.
func WithToken(token string) RequestOption {
	return func(o *requestOptions) {
		o.token = token
	}
}

// WithSkipAuthRefresh disables the refresh protocol for this call; a 401 is
// returned as an ordinary *HTTPError.
func WithSkipAuthRefresh(skip bool) RequestOption {
	return func(o *requestOptions) {
		o.skipAuthRefresh = skip
	}
}

func newRequestOptions(options []RequestOption) *requestOptions {
	ret := &requestOptions{method: http.MethodGet, headers: http.Header{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// payload returns the encoded body once, so that a replay sends identical bytes.
func (o *requestOptions) payload() ([]byte, error) {
	switch actual := o.body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return actual, nil
	case string:
		return []byte(actual), nil
	case io.Reader:
		data, err := io.ReadAll(actual)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		return data, nil
	default:
		data, err := json.Marshal(actual)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		return data, nil
	}
}

func bodyReader(data []byte) io.Reader {
	if data == nil {
		return nil
	}
	return bytes.NewReader(data)
}
