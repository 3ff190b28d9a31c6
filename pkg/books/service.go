package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/tsundoku-app/tsundoku/pkg/errcodes"
	"github.com/tsundoku-app/tsundoku/pkg/models"
	"github.com/uptrace/bun"
)

type RetrieveBookOptions struct {
	ID *int
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateBook persists an administratively inserted catalog entry. Bulk
// ingestion (CSV/PDF scans) writes rows directly and is out of scope here.
func (svc *Service) CreateBook(ctx context.Context, book *models.Book) error {
	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = book.CreatedAt
	if book.Status == "" {
		book.Status = models.StatusNotStarted
	}

	_, err := svc.db.
		NewInsert().
		Model(book).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.Book, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book)

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

func (svc *Service) ListBooks(ctx context.Context) ([]*models.Book, error) {
	books := []*models.Book{}

	err := svc.db.
		NewSelect().
		Model(&books).
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// SearchBooks returns every book whose title or author contains the query as
// a substring. SQLite LIKE is case-insensitive for ASCII, no ranking.
func (svc *Service) SearchBooks(ctx context.Context, query string) ([]*models.Book, error) {
	books := []*models.Book{}
	pattern := "%" + query + "%"

	err := svc.db.
		NewSelect().
		Model(&books).
		Where("b.title LIKE ? OR b.author LIKE ?", pattern, pattern).
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// UpdateBookStatus overwrites a book's status with the given value verbatim.
// There is deliberately no check that the value is one of the recognized
// statuses and no progress recomputation: this is the override path, and it
// can disagree with the derived status until the next recompute.
func (svc *Service) UpdateBookStatus(ctx context.Context, book *models.Book, status string) error {
	book.Status = status
	book.UpdatedAt = time.Now()

	_, err := svc.db.
		NewUpdate().
		Model(book).
		Column("status", "updated_at").
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

// MarkCompleted forces status to completed and progress to exactly 100,
// bypassing the progress engine entirely.
func (svc *Service) MarkCompleted(ctx context.Context, book *models.Book) error {
	progress := 100
	book.Status = models.StatusCompleted
	book.Progress = &progress
	book.UpdatedAt = time.Now()

	_, err := svc.db.
		NewUpdate().
		Model(book).
		Column("status", "progress", "updated_at").
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}
