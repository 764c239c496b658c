package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"intervista/pkg/config"
)

const sampleLog = `Candidate ID: C-1
Date: 2025-03-07
Time: 16:00 - 17:00 IST

Candidate ID: C-2
Date: 2025-03-08
Time: 09:30 - 10:30
Cancelled
`

func testServer(t *testing.T) *Server {
	t.Helper()
	return New(config.DefaultConfig(), zap.NewNop())
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestAnalyze_Success(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze?as_of=2025-03-10", strings.NewReader(sampleLog))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var report struct {
		Summary struct {
			TotalRecords int `json:"total_records"`
			Completed    int `json:"completed"`
			Cancelled    int `json:"cancelled"`
		} `json:"summary"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if report.Summary.TotalRecords != 2 {
		t.Errorf("TotalRecords = %d, want 2", report.Summary.TotalRecords)
	}
	if report.Summary.Completed != 1 || report.Summary.Cancelled != 1 {
		t.Errorf("Summary = %+v", report.Summary)
	}
}

func TestAnalyze_EmptyBody(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(""))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("body = %q, want error payload", rec.Body.String())
	}
}

func TestAnalyze_MissingField(t *testing.T) {
	srv := testServer(t)

	body := "Candidate ID: C-1\nTime: 10:00 - 11:00"
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestAnalyze_BadAsOf(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze?as_of=tomorrow", strings.NewReader(sampleLog))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// Two identical requests must yield identical summaries: handlers hold no
// state between requests.
func TestAnalyze_StatelessAcrossRequests(t *testing.T) {
	srv := testServer(t)

	run := func() string {
		req := httptest.NewRequest(http.MethodPost, "/v1/analyze?as_of=2025-03-10", strings.NewReader(sampleLog))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var decoded struct {
			Summary json.RawMessage `json:"summary"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&decoded); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return string(decoded.Summary)
	}

	if first, second := run(), run(); first != second {
		t.Errorf("summaries differ across identical requests:\n%s\n%s", first, second)
	}
}
