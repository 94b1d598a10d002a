package transport

import (
	"strings"

	"github.com/viant/finsync/client/auth/store"
)

// resolveURL returns path verbatim when absolute, otherwise joins it to baseURL.
func resolveURL(baseURL, path string) string {
	if isAbsoluteURL(path) {
		return path
	}
	if baseURL == "" {
		baseURL = store.DefaultBaseURL
	}
	if path == "" {
		return baseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func isAbsoluteURL(path string) bool {
	idx := strings.Index(path, "://")
	if idx <= 0 {
		return false
	}
	for _, r := range path[:idx] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}
