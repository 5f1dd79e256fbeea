package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

func TestLiveness(t *testing.T) {
	h := NewHealthHandler("test")
	rr := httptest.NewRecorder()
	h.Liveness(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp LivenessResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "alive" || resp.Time == 0 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestStatus(t *testing.T) {
	h := NewHealthHandler("1.2.3")
	rr := httptest.NewRecorder()
	h.Status(rr, httptest.NewRequest(http.MethodGet, "/status", nil))

	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["version"] != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %v", resp["version"])
	}
}

func TestDelay(t *testing.T) {
	r := mux.NewRouter()
	r.Handle("/delay/{ms}", DelayHandler{Max: 20 * time.Millisecond})

	tests := []struct {
		path string
		code int
		body string
	}{
		{"/delay/5", http.StatusOK, `{"slept_ms":5}`},
		{"/delay/500", http.StatusOK, `{"slept_ms":20}`},
		{"/delay/9223372036855", http.StatusOK, `{"slept_ms":20}`},
		{"/delay/99999999999999999999", http.StatusOK, `{"slept_ms":20}`},
		{"/delay/abc", http.StatusBadRequest, ""},
		{"/delay/-1", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		start := time.Now()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rr.Code != tt.code {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.code, rr.Code)
		}
		if tt.body != "" && rr.Body.String() != tt.body {
			t.Errorf("%s: expected body %s, got %s", tt.path, tt.body, rr.Body.String())
		}
		if tt.body == `{"slept_ms":20}` && time.Since(start) < 20*time.Millisecond {
			t.Errorf("%s: expected to sleep the capped delay, took %v", tt.path, time.Since(start))
		}
	}
}
