package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"intervista/pkg/output"
	"intervista/pkg/pipeline"
)

const sampleLog = `Candidate ID: C-1
Date: 2025-03-07
Time: 16:00 - 17:00 IST
`

func sampleReport(t *testing.T) *output.Report {
	t.Helper()
	result, err := pipeline.Run(sampleLog, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("pipeline.Run() error = %v", err)
	}
	return output.NewReport(result, "test")
}

func TestSend_Success(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	resp := client.Send(context.Background(), sampleReport(t), SendOptions{
		URL:   server.URL,
		Token: "tok123",
	})

	if !resp.Success() {
		t.Fatalf("Send() failed: %+v", resp)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody["event"] != EventAnalysisCompleted {
		t.Errorf("event = %v, want %q", gotBody["event"], EventAnalysisCompleted)
	}
	report, ok := gotBody["report"].(map[string]any)
	if !ok {
		t.Fatal("posted payload missing report")
	}
	if _, ok := report["summary"]; !ok {
		t.Error("posted report missing summary")
	}
}

func TestSend_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("Authorization header set without token")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), sampleReport(t), SendOptions{URL: server.URL})
	if !resp.Success() {
		t.Errorf("Send() failed: %+v", resp)
	}
}

func TestSend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), sampleReport(t), SendOptions{URL: server.URL})
	if resp.Success() {
		t.Error("Success() = true for 500 response")
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if resp.Error == nil {
		t.Error("Error = nil for 500 response")
	}
}

// A non-2xx reply must surface as a delivery error, not a silent failure.
func TestSend_RejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), sampleReport(t), SendOptions{URL: server.URL})

	if resp.Error == nil {
		t.Fatal("Error = nil for 404 response")
	}
	if !strings.Contains(resp.Error.Error(), "404") {
		t.Errorf("Error = %v, want the status code named", resp.Error)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", resp.StatusCode)
	}
}

func TestSend_ConnectionRefused(t *testing.T) {
	resp := NewClient().Send(context.Background(), sampleReport(t), SendOptions{
		URL:     "http://127.0.0.1:1", // nothing listens here
		Timeout: time.Second,
	})

	if resp.Success() {
		t.Error("Success() = true for unreachable endpoint")
	}
	if resp.Error == nil {
		t.Error("Error = nil for unreachable endpoint")
	}
}

func TestSend_Timeout(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	resp := NewClient().Send(context.Background(), sampleReport(t), SendOptions{
		URL:     server.URL,
		Timeout: 50 * time.Millisecond,
	})

	if resp.Success() {
		t.Error("Success() = true for timed-out request")
	}
}
