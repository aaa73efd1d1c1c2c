//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/nafes-platform/question-service/internal/auth/jwt"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

// staffToken mints a teacher token with the secret the service under test
// was started with.
func staffToken(t *testing.T) string {
	t.Helper()
	m := jwt.NewManager(jwt.TokenConfig{
		AccessSecret: []byte(envOrDefault("INTEGRATION_JWT_SECRET", "dev-secret")),
		Issuer:       envOrDefault("INTEGRATION_JWT_ISSUER", "nafes"),
	})
	token, err := m.GenerateAccessToken(jwt.User{ID: uuid.New(), DisplayName: "integration", Role: jwt.RoleTeacher})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func postJSON(t *testing.T, path, token string, payload interface{}, out interface{}) int {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, baseURL()+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return doJSON(t, req, out)
}

func getJSON(t *testing.T, path, token string, out interface{}) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, baseURL()+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return doJSON(t, req, out)
}

func doJSON(t *testing.T, req *http.Request, out interface{}) int {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s response: %v", req.URL.Path, err)
		}
	}
	return resp.StatusCode
}
