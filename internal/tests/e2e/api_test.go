package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamescores/apiserver/config"
	"github.com/gamescores/apiserver/internal/server"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv, err := server.New(context.Background(), config.Config{
		ServerPort: 3000,
		JWTSecret:  "e2e-secret",
	})
	if err != nil {
		t.Fatalf("failed to construct server: %v", err)
	}

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func TestHighscoreLifecycle(t *testing.T) {
	ts := startServer(t)

	if err := checkHealth(ts.URL); err != nil {
		t.Fatalf("health check: %v", err)
	}

	// The seed account can log in immediately after boot.
	seedToken, err := login(ts.URL, "johnDoe", "password123")
	if err != nil {
		t.Fatalf("seed login: %v", err)
	}

	token, err := signup(ts.URL, "racer42x", "hunter22")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	scores := []float64{120, 340, 220}
	for i, score := range scores {
		handle := fmt.Sprintf("racer%d", i)
		if err := submitScore(ts.URL, token, "level-1", handle, score); err != nil {
			t.Fatalf("submit score %v: %v", score, err)
		}
	}

	// Seed-user token is just as valid for submissions.
	if err := submitScore(ts.URL, seedToken, "level-2", "johnDoe", 50); err != nil {
		t.Fatalf("submit with seed token: %v", err)
	}

	items, err := listScores(ts.URL, "level-1")
	if err != nil {
		t.Fatalf("list scores: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 records, got %d", len(items))
	}
	if items[0].Score != 340 || items[1].Score != 220 || items[2].Score != 120 {
		t.Fatalf("expected descending order 340, 220, 120; got %v, %v, %v",
			items[0].Score, items[1].Score, items[2].Score)
	}

	// Submissions without a token are rejected.
	status, err := submitScoreRaw(ts.URL, "", "level-1", "sneaky", 999)
	if err != nil {
		t.Fatalf("unauthenticated submit: %v", err)
	}
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	// Unknown levels return an empty list, not an error.
	items, err = listScores(ts.URL, "no-such-level")
	if err != nil {
		t.Fatalf("list empty level: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no records, got %d", len(items))
	}
}

type scoreRecord struct {
	Level      string  `json:"level"`
	UserHandle string  `json:"userHandle"`
	Score      float64 `json:"score"`
	Timestamp  any     `json:"timestamp"`
}

func checkHealth(baseURL string) error {
	resp, err := http.Get(baseURL + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func signup(baseURL, userHandle, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{
		"userHandle": userHandle,
		"password":   password,
	})
	resp, err := http.Post(baseURL+"/signup", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Token == "" {
		return "", fmt.Errorf("signup response missing token")
	}
	return body.Token, nil
}

func login(baseURL, userHandle, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{
		"userHandle": userHandle,
		"password":   password,
	})
	resp, err := http.Post(baseURL+"/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		JSONWebToken string `json:"jsonWebToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.JSONWebToken == "" {
		return "", fmt.Errorf("login response missing jsonWebToken")
	}
	return body.JSONWebToken, nil
}

func submitScore(baseURL, token, level, userHandle string, score float64) error {
	status, err := submitScoreRaw(baseURL, token, level, userHandle, score)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", status)
	}
	return nil
}

func submitScoreRaw(baseURL, token, level, userHandle string, score float64) (int, error) {
	payload, _ := json.Marshal(map[string]any{
		"level":      level,
		"userHandle": userHandle,
		"score":      score,
		"timestamp":  "2026-08-29T12:00:00Z",
	})
	req, err := http.NewRequest(http.MethodPost, baseURL+"/high-scores", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func listScores(baseURL, level string) ([]scoreRecord, error) {
	resp, err := http.Get(fmt.Sprintf("%s/high-scores?level=%s", baseURL, level))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var items []scoreRecord
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
