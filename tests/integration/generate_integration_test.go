package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

// TestGenerateEndpointLive calls a running tripgen-api backed by a real model.
// Start the server first, then run with TRIPGEN_API_BASE_URL=http://localhost:3000.
func TestGenerateEndpointLive(t *testing.T) {
	_ = godotenv.Load("../../.env")

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("TRIPGEN_API_BASE_URL")), "/")
	if baseURL == "" {
		t.Skip("TRIPGEN_API_BASE_URL not set; skipping live endpoint test")
	}
	client := &http.Client{Timeout: 90 * time.Second}

	waitForAPIReady(t, client, baseURL)

	status, body := callGenerate(t, client, baseURL, map[string]any{
		"origin":      "Lyon",
		"destination": "Paris",
		"startDate":   time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"duration":    "2",
		"budget":      "",
		"interests":   []string{"museums", "food"},
		"preferences": "",
	})
	t.Logf("[TEST LOG] /api/generate status=%d", status)

	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
		Raw     *string         `json:"raw"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response: %v, raw=%s", err, string(body))
	}

	switch {
	case status == http.StatusOK && resp.Success:
		var data struct {
			TripSummary string `json:"trip_summary"`
			Itinerary   []struct {
				Day int `json:"day"`
			} `json:"itinerary"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("data is not an itinerary: %v", err)
		}
		if strings.TrimSpace(data.TripSummary) == "" {
			t.Errorf("expected trip_summary, got %s", string(resp.Data))
		}
		t.Logf("[TEST LOG] %s (%d days)", data.TripSummary, len(data.Itinerary))
	case status == http.StatusOK && !resp.Success:
		if resp.Raw == nil {
			t.Fatalf("soft failure must carry raw text, body=%s", string(body))
		}
		t.Logf("[TEST LOG] model returned unusable JSON: %s", resp.Error)
	case status == http.StatusInternalServerError:
		if resp.Success || resp.Error == "" {
			t.Fatalf("hard failure must carry an error, body=%s", string(body))
		}
		t.Logf("[TEST LOG] transport failure: %s", resp.Error)
	default:
		t.Fatalf("unexpected status %d, body=%s", status, string(body))
	}
}

func callGenerate(t *testing.T, client *http.Client, baseURL string, payload map[string]any) (int, []byte) {
	t.Helper()

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/generate", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call /api/generate: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, body
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}
