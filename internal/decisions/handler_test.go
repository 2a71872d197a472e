package decisions_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drishti-labs/drishti/internal/accounts"
	"github.com/drishti-labs/drishti/internal/decisions"
	"github.com/drishti-labs/drishti/internal/ledger"
	"github.com/drishti-labs/drishti/pkg/pagination"
)

func setupHandler(t *testing.T) (*http.ServeMux, accounts.System, ledger.System) {
	t.Helper()

	led := ledger.New(testLogger(), ledger.SystemClock(), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
	acct := accounts.New(testLogger(), accounts.CreateCommand{Username: "admin", Password: "password123"})
	svc := decisions.New(led, acct, "admin", testLogger())

	mux := http.NewServeMux()
	group := svc.Handler().Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux, acct, led
}

type submitResponse struct {
	Success bool          `json:"success"`
	Entry   *ledger.Entry `json:"entry"`
}

func TestSubmitEndpoint(t *testing.T) {
	t.Run("records decision with default actor", func(t *testing.T) {
		mux, _, _ := setupHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/dpr/action", strings.NewReader(`{"action":"approve"}`))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
		}

		var resp submitResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !resp.Success {
			t.Error("success = false, want true")
		}
		if resp.Entry == nil || resp.Entry.User != "admin" {
			t.Errorf("entry user = %v, want admin", resp.Entry)
		}
	})

	t.Run("attributes session actor", func(t *testing.T) {
		mux, acct, _ := setupHandler(t)

		if _, err := acct.Create(context.Background(), accounts.CreateCommand{Username: "priya", Password: "secret"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		_, token, err := acct.Login(context.Background(), "priya", "secret")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/dpr/action", strings.NewReader(`{"action":"reject"}`))
		req.Header.Set("Authorization", "Bearer "+token)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
		}

		var resp submitResponse
		json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Entry.User != "priya" {
			t.Errorf("entry user = %q, want priya", resp.Entry.User)
		}
	})

	t.Run("invalid session returns 401 without committing", func(t *testing.T) {
		mux, _, led := setupHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/dpr/action", strings.NewReader(`{"action":"approve"}`))
		req.Header.Set("Authorization", "Bearer bogus-token")
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if got := entryCount(t, led); got != 0 {
			t.Errorf("ledger entries = %d, want 0", got)
		}
	})

	t.Run("invalid action returns 400", func(t *testing.T) {
		mux, _, _ := setupHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/dpr/action", strings.NewReader(`{"action":"escalate"}`))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["error"] == "" {
			t.Error("missing error message")
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mux, _, _ := setupHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/dpr/action", strings.NewReader(`{`))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}
