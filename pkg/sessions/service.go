package sessions

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/tsundoku-app/tsundoku/pkg/errcodes"
	"github.com/tsundoku-app/tsundoku/pkg/models"
	"github.com/tsundoku-app/tsundoku/pkg/progress"
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

// CreateSession inserts the session and recomputes progress for the whole
// library in the same transaction, so a failed recompute rolls the insert
// back too.
func (s *Service) CreateSession(ctx context.Context, session *models.ReadingSession) error {
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Book)(nil)).
			Where("b.id = ?", session.BookID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Book")
		}

		session.CreatedAt = time.Now()

		_, err = tx.NewInsert().
			Model(session).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = s.recalculateProgress(ctx, tx)
		return errors.WithStack(err)
	})

	return errors.WithStack(err)
}

func (s *Service) ListSessions(ctx context.Context) ([]*models.ReadingSession, error) {
	sessions := []*models.ReadingSession{}

	err := s.db.NewSelect().
		Model(&sessions).
		Order("rs.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return sessions, nil
}

// CalculateProgress recomputes progress and status for every book that has at
// least one session, returning what changed.
func (s *Service) CalculateProgress(ctx context.Context) ([]progress.Update, error) {
	var updates []progress.Update

	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		updates, err = s.recalculateProgress(ctx, tx)
		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updates, nil
}

func (s *Service) recalculateProgress(ctx context.Context, idb bun.IDB) ([]progress.Update, error) {
	books := []*models.Book{}
	err := idb.NewSelect().
		Model(&books).
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions := []*models.ReadingSession{}
	err = idb.NewSelect().
		Model(&sessions).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	byBook := map[int][]*models.ReadingSession{}
	for _, session := range sessions {
		byBook[session.BookID] = append(byBook[session.BookID], session)
	}

	updates := []progress.Update{}
	for _, book := range books {
		bookSessions, ok := byBook[book.ID]
		if !ok {
			// Books nobody has logged a session against keep whatever
			// progress and status they already have.
			continue
		}

		result := progress.Compute(book, bookSessions)

		book.Progress = result.Progress
		book.Status = result.Status
		book.UpdatedAt = time.Now()

		_, err := idb.NewUpdate().
			Model(book).
			Column("progress", "status", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		updates = append(updates, progress.Update{
			ID:       book.ID,
			Progress: result.Progress,
			Status:   result.Status,
		})
	}

	return updates, nil
}
