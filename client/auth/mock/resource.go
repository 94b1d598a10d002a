package mock

import (
	"net/http"
	"strings"
)

// defaultResourceHandler simulates a protected resource at /resource
func (m *AuthorizationService) defaultResourceHandler(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		w.Header().Set("WWW-Authenticate", `Bearer realm="`+m.Issuer+`"`)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
		return
	}
	if m.isRevoked(token) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token revoked"})
		return
	}
	claims, err := m.verifyJWT(token, accessTokenType)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "This is a protected resource",
		"subject": claims["sub"],
	})
}
