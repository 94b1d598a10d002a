package transport

import (
	"net/http"

	"github.com/viant/finsync/client/auth/store"
)

const (
	headerContentType   = "Content-Type"
	headerAPIKey        = "X-API-Key"
	headerAuthorization = "Authorization"
	contentTypeJSON     = "application/json"
)

// buildHeaders composes request headers from config and per-call options.
// Token precedence: overrideToken, then the call option, then config.
func buildHeaders(config store.Config, options *requestOptions, overrideToken string) http.Header {
	ret := http.Header{}
	ret.Set(headerContentType, contentTypeJSON)
	for name, values := range options.headers {
		ret[name] = append([]string(nil), values...)
	}
	if apiKey := firstNonEmpty(options.apiKey, config.APIKey); apiKey != "" {
		ret.Set(headerAPIKey, apiKey)
	}
	if token := firstNonEmpty(overrideToken, options.token, config.Token); token != "" {
		ret.Set(headerAuthorization, "Bearer "+token)
	}
	return ret
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
