package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Response is the envelope returned by Request.
// Data holds the decoded JSON body, or the raw text when the response does not
// declare a JSON content type.
type Response struct {
	Data    any
	Status  int
	Headers http.Header
	body    []byte
}

// Body returns the raw response body.
func (r *Response) Body() []byte {
	return r.body
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the raw JSON body of r into T.
func Decode[T any](r *Response) (T, error) {
	var ret T
	if r == nil || len(r.body) == 0 {
		return ret, nil
	}
	if err := json.Unmarshal(r.body, &ret); err != nil {
		return ret, fmt.Errorf("failed to decode response: %w", err)
	}
	return ret, nil
}

func readResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	ret := &Response{Status: resp.StatusCode, Headers: resp.Header, body: data}
	if !isJSON(resp.Header.Get(headerContentType)) {
		ret.Data = string(data)
		return ret, nil
	}
	if len(data) == 0 {
		return ret, nil
	}
	var value any
	if err = json.Unmarshal(data, &value); err != nil {
		if ret.OK() {
			return nil, fmt.Errorf("failed to decode JSON response: %w", err)
		}
		// failure bodies are surfaced as text when they are not valid JSON
		ret.Data = string(data)
		return ret, nil
	}
	ret.Data = value
	return ret, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}
	return mediaType == contentTypeJSON || strings.HasSuffix(mediaType, "+json")
}
