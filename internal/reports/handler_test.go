package reports_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drishti-labs/drishti/internal/reports"
	"github.com/drishti-labs/drishti/pkg/pagination"
	"github.com/drishti-labs/drishti/pkg/storage"
)

type mockSystem struct {
	listFn    func(ctx context.Context, page pagination.PageRequest, filters reports.Filters) (*pagination.PageResult[reports.Report], error)
	findFn    func(ctx context.Context, id uuid.UUID) (*reports.Report, error)
	createFn  func(ctx context.Context, cmd reports.CreateCommand) (*reports.Report, error)
	batchFn   func(ctx context.Context, cmds []reports.CreateCommand) []reports.BatchResult
	contentFn func(ctx context.Context, id uuid.UUID) (*reports.Report, *storage.DownloadResult, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSystem) Handler() *reports.Handler {
	return newTestHandler(m)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters reports.Filters) (*pagination.PageResult[reports.Report], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*reports.Report, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Create(ctx context.Context, cmd reports.CreateCommand) (*reports.Report, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockSystem) CreateBatch(ctx context.Context, cmds []reports.CreateCommand) []reports.BatchResult {
	return m.batchFn(ctx, cmds)
}

func (m *mockSystem) Content(ctx context.Context, id uuid.UUID) (*reports.Report, *storage.DownloadResult, error) {
	return m.contentFn(ctx, id)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func newTestHandler(sys reports.System) *reports.Handler {
	return reports.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
		1<<20,
	)
}

func setupMux(h *reports.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func sampleReport() reports.Report {
	pages := 12
	return reports.Report{
		ID:          uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Filename:    "moreh-bypass.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		PageCount:   &pages,
		StorageKey:  "550e8400-e29b-41d4-a716-446655440000/moreh-bypass.pdf",
		Status:      reports.StatusAnalyzed,
		UploadedAt:  time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 2, 10, 9, 5, 0, 0, time.UTC),
	}
}

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write(data)
	writer.Close()
	return &buf, writer.FormDataContentType()
}

func TestReportList(t *testing.T) {
	report := sampleReport()
	sys := &mockSystem{
		listFn: func(_ context.Context, _ pagination.PageRequest, _ reports.Filters) (*pagination.PageResult[reports.Report], error) {
			result := pagination.NewPageResult([]reports.Report{report}, 1, 1, 20)
			return &result, nil
		},
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports?status=analyzed", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result pagination.PageResult[reports.Report]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("total = %d, want 1", result.Total)
	}
}

func TestReportSearch(t *testing.T) {
	var captured reports.Filters
	sys := &mockSystem{
		listFn: func(_ context.Context, _ pagination.PageRequest, filters reports.Filters) (*pagination.PageResult[reports.Report], error) {
			captured = filters
			result := pagination.NewPageResult([]reports.Report{}, 0, 1, 20)
			return &result, nil
		},
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports/search",
		bytes.NewReader([]byte(`{"page":1,"page_size":10,"status":"uploaded"}`)))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if captured.Status == nil || *captured.Status != "uploaded" {
		t.Errorf("status filter = %v, want uploaded", captured.Status)
	}
}

func TestReportUpload(t *testing.T) {
	t.Run("accepts multipart file", func(t *testing.T) {
		report := sampleReport()
		var captured reports.CreateCommand
		sys := &mockSystem{
			createFn: func(_ context.Context, cmd reports.CreateCommand) (*reports.Report, error) {
				captured = cmd
				return &report, nil
			},
		}
		mux := setupMux(sys.Handler())

		body, contentType := multipartBody(t, "file", "moreh-bypass.pdf", []byte("%PDF-1.7 data"))
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/reports", body)
		req.Header.Set("Content-Type", contentType)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
		}
		if captured.Filename != "moreh-bypass.pdf" {
			t.Errorf("filename = %q, want moreh-bypass.pdf", captured.Filename)
		}
		if len(captured.Data) == 0 {
			t.Error("empty file data")
		}
	})

	t.Run("missing file field returns 400", func(t *testing.T) {
		sys := &mockSystem{}
		mux := setupMux(sys.Handler())

		body, contentType := multipartBody(t, "wrong", "x.pdf", []byte("data"))
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/reports", body)
		req.Header.Set("Content-Type", contentType)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("non-pdf rejection surfaces as 400", func(t *testing.T) {
		sys := &mockSystem{
			createFn: func(_ context.Context, _ reports.CreateCommand) (*reports.Report, error) {
				return nil, reports.ErrNotPDF
			},
		}
		mux := setupMux(sys.Handler())

		body, contentType := multipartBody(t, "file", "notes.txt", []byte("plain text"))
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/reports", body)
		req.Header.Set("Content-Type", contentType)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestReportBatchUpload(t *testing.T) {
	report := sampleReport()
	sys := &mockSystem{
		batchFn: func(_ context.Context, cmds []reports.CreateCommand) []reports.BatchResult {
			results := make([]reports.BatchResult, len(cmds))
			for i, cmd := range cmds {
				results[i] = reports.BatchResult{Filename: cmd.Filename, Report: &report}
			}
			return results
		},
	}
	mux := setupMux(sys.Handler())

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range []string{"a.pdf", "b.pdf"} {
		part, _ := writer.CreateFormFile("files", name)
		part.Write([]byte("%PDF-1.7 " + name))
	}
	writer.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports/batch", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var results []reports.BatchResult
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("results = %d, want 2", len(results))
	}
}

func TestReportContent(t *testing.T) {
	report := sampleReport()
	sys := &mockSystem{
		contentFn: func(_ context.Context, id uuid.UUID) (*reports.Report, *storage.DownloadResult, error) {
			return &report, &storage.DownloadResult{
				Body:          io.NopCloser(bytes.NewReader([]byte("%PDF-1.7 stream"))),
				ContentType:   "application/pdf",
				ContentLength: 15,
			}, nil
		},
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/"+report.ID.String()+"/content", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", got)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body missing file stream")
	}
}

func TestReportDelete(t *testing.T) {
	report := sampleReport()

	t.Run("removes report", func(t *testing.T) {
		sys := &mockSystem{
			deleteFn: func(_ context.Context, id uuid.UUID) error {
				if id != report.ID {
					t.Errorf("id = %v, want %v", id, report.ID)
				}
				return nil
			},
		}
		mux := setupMux(sys.Handler())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/reports/"+report.ID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		sys := &mockSystem{
			deleteFn: func(_ context.Context, _ uuid.UUID) error {
				return reports.ErrNotFound
			},
		}
		mux := setupMux(sys.Handler())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/reports/"+uuid.NewString(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}
