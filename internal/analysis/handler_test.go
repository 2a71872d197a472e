package analysis_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drishti-labs/drishti/internal/analysis"
	"github.com/drishti-labs/drishti/internal/ledger"
)

func setupMux(sys analysis.System) *http.ServeMux {
	mux := http.NewServeMux()
	group := sys.Handler().Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestAnalysisEndpoint(t *testing.T) {
	t.Run("404 before any analysis", func(t *testing.T) {
		sys, _ := newProvider()
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/dpr/analysis", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("serves analysis with audit trail", func(t *testing.T) {
		sys, led := newProvider()
		if _, err := sys.Produce(context.Background(), analysis.ReportMeta{}); err != nil {
			t.Fatalf("Produce: %v", err)
		}
		led.Append(context.Background(), ledger.AppendCommand{Action: ledger.ActionApprove, User: "admin"})

		mux := setupMux(sys)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/dpr/analysis", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var body struct {
			FileName    string         `json:"fileName"`
			HealthScore int            `json:"dprHealthScore"`
			AuditLog    []ledger.Entry `json:"auditLog"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.HealthScore != 88 {
			t.Errorf("dprHealthScore = %d, want 88", body.HealthScore)
		}
		if len(body.AuditLog) != 3 {
			t.Errorf("auditLog = %d, want 3", len(body.AuditLog))
		}
	})
}

func TestSummaryEndpoint(t *testing.T) {
	sys, _ := newProvider()
	if _, err := sys.Produce(context.Background(), analysis.ReportMeta{}); err != nil {
		t.Fatalf("Produce: %v", err)
	}

	mux := setupMux(sys)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dpr/summary", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var summary analysis.Summary
	if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.FileName == "" {
		t.Error("empty fileName")
	}
}
