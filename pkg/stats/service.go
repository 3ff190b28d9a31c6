package stats

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tsundoku-app/tsundoku/pkg/models"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) CatalogReport(ctx context.Context) (*CatalogReport, error) {
	books, err := s.listBooks(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return BuildCatalogReport(books), nil
}

func (s *Service) SessionReport(ctx context.Context) (*SessionReport, error) {
	books, err := s.listBooks(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions := []*models.ReadingSession{}
	err = s.db.NewSelect().
		Model(&sessions).
		Order("rs.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return BuildSessionReport(books, sessions), nil
}

func (s *Service) listBooks(ctx context.Context) ([]*models.Book, error) {
	books := []*models.Book{}

	err := s.db.NewSelect().
		Model(&books).
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}
