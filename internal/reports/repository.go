package reports

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/drishti-labs/drishti/internal/analysis"
	"github.com/drishti-labs/drishti/pkg/pagination"
	"github.com/drishti-labs/drishti/pkg/query"
	"github.com/drishti-labs/drishti/pkg/repository"
	"github.com/drishti-labs/drishti/pkg/storage"
)

// batchConcurrency bounds parallel uploads within one batch request.
const batchConcurrency = 4

type repositorySystem struct {
	db             *sql.DB
	store          storage.System
	analyzer       analysis.System
	logger         *slog.Logger
	pagination     pagination.Config
	maxUploadBytes int64
	projection     *query.ProjectionMap
}

// NewRepository creates a report System backed by PostgreSQL and blob
// storage, handing accepted uploads to the given analyzer.
func NewRepository(
	db *sql.DB,
	store storage.System,
	analyzer analysis.System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadBytes int64,
) System {
	return &repositorySystem{
		db:             db,
		store:          store,
		analyzer:       analyzer,
		logger:         logger,
		pagination:     pagination,
		maxUploadBytes: maxUploadBytes,
		projection:     newReportProjection(),
	}
}

func (s *repositorySystem) Handler() *Handler {
	return NewHandler(s, s.logger, s.pagination, s.maxUploadBytes)
}

func (s *repositorySystem) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Report], error) {
	b := query.NewBuilder(s.projection, query.SortField{Field: "UploadedAt", Descending: true})
	filters.apply(b)
	b.WhereSearch(page.Search, "Filename", "Status")

	if len(page.Sort) > 0 {
		b.OrderByFields(page.Sort)
	}

	countSQL, countArgs := b.BuildCount()
	total, err := repository.QueryOne(ctx, s.db, countSQL, countArgs, scanCount)
	if err != nil {
		return nil, err
	}

	pageSQL, pageArgs := b.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, s.db, pageSQL, pageArgs, scanReport)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *repositorySystem) Find(ctx context.Context, id uuid.UUID) (*Report, error) {
	b := query.NewBuilder(s.projection)
	sqlStr, args := b.BuildSingle("ID", id)

	report, err := repository.QueryOne(ctx, s.db, sqlStr, args, scanReport)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &report, nil
}

func (s *repositorySystem) Create(ctx context.Context, cmd CreateCommand) (*Report, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if int64(len(cmd.Data)) > s.maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	pages, err := pageCount(cmd.Data)
	if err != nil {
		return nil, err
	}

	contentType := cmd.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}

	id := uuid.New()
	key := fmt.Sprintf("%s/%s", id, cmd.Filename)

	if err := s.store.Upload(ctx, key, bytes.NewReader(cmd.Data), contentType); err != nil {
		return nil, fmt.Errorf("storing report %s: %w", cmd.Filename, err)
	}

	const insert = `
		INSERT INTO reports (id, filename, content_type, size_bytes, page_count, storage_key, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, filename, content_type, size_bytes, page_count, storage_key, status, uploaded_at, updated_at`

	report, err := repository.QueryOne(ctx, s.db, insert,
		[]any{id, cmd.Filename, contentType, int64(len(cmd.Data)), pages, key, StatusUploaded},
		scanReport,
	)
	if err != nil {
		// the blob is orphaned otherwise
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.Error("orphaned blob cleanup failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	s.logger.Info("report stored",
		"id", report.ID,
		"filename", report.Filename,
		"pages", pages,
	)

	return s.analyze(ctx, &report)
}

// analyze hands the report to the pipeline and promotes its status. A
// pipeline failure leaves the report uploaded but unanalyzed.
func (s *repositorySystem) analyze(ctx context.Context, report *Report) (*Report, error) {
	_, err := s.analyzer.Produce(ctx, analysis.ReportMeta{
		FileName:  report.Filename,
		PageCount: report.PageCount,
	})
	if err != nil {
		s.logger.Warn("analysis failed, report remains unanalyzed",
			"id", report.ID,
			"error", err,
		)
		return report, nil
	}

	const promote = `
		UPDATE reports
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, filename, content_type, size_bytes, page_count, storage_key, status, uploaded_at, updated_at`

	updated, err := repository.QueryOne(ctx, s.db, promote,
		[]any{report.ID, StatusAnalyzed},
		scanReport,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &updated, nil
}

func (s *repositorySystem) CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult {
	results := make([]BatchResult, len(cmds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, cmd := range cmds {
		g.Go(func() error {
			results[i] = BatchResult{Filename: cmd.Filename}

			report, err := s.Create(ctx, cmd)
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}

			results[i].Report = report
			return nil
		})
	}

	g.Wait()
	return results
}

func (s *repositorySystem) Content(ctx context.Context, id uuid.UUID) (*Report, *storage.DownloadResult, error) {
	report, err := s.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	download, err := s.store.Download(ctx, report.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("reading report content %s: %w", report.ID, err)
	}

	return report, download, nil
}

func (s *repositorySystem) Delete(ctx context.Context, id uuid.UUID) error {
	report, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	const remove = `DELETE FROM reports WHERE id = $1`
	if err := repository.ExecExpectOne(ctx, s.db, remove, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := s.store.Delete(ctx, report.StorageKey); err != nil {
		s.logger.Warn("report blob removal failed", "key", report.StorageKey, "error", err)
	}

	s.logger.Info("report deleted", "id", id, "filename", report.Filename)
	return nil
}

func scanCount(s repository.Scanner) (int, error) {
	var n int
	err := s.Scan(&n)
	return n, err
}
