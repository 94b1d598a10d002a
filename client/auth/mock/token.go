package mock

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// defaultTokenHandler handles OAuth2 refresh_token grants at /token
func (m *AuthorizationService) defaultTokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if grantType := r.FormValue("grant_type"); grantType != "refresh_token" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}
	clientID, clientSecret, ok := r.BasicAuth()
	if !ok {
		clientID = r.FormValue("client_id")
		clientSecret = r.FormValue("client_secret")
	}
	if clientID != m.ClientID || clientSecret != m.ClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
		return
	}
	if _, err := m.verifyJWT(r.FormValue("refresh_token"), refreshTokenType); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
		return
	}
	accessToken, refreshToken, err := m.IssueTokens()
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	atomic.AddInt64(&m.refreshCount, 1)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  accessToken,
		"token_type":    "Bearer",
		"refresh_token": refreshToken,
		"expires_in":    int64(m.AccessTokenTTL.Seconds()),
	})
}

// defaultRefreshHandler handles JSON refresh requests at /auth/refresh
func (m *AuthorizationService) defaultRefreshHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	if _, err := m.verifyJWT(input.RefreshToken, refreshTokenType); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid refresh token"})
		return
	}
	accessToken, refreshToken, err := m.IssueTokens()
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	atomic.AddInt64(&m.refreshCount, 1)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"expiresIn":    int64(m.AccessTokenTTL.Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
