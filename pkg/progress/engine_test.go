package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsundoku-app/tsundoku/pkg/models"
)

func intp(v int) *int {
	return &v
}

func session(startPage, endPage *int) *models.ReadingSession {
	return &models.ReadingSession{StartPage: startPage, EndPage: endPage}
}

func TestCompute_SumsPageDeltas(t *testing.T) {
	t.Parallel()

	book := &models.Book{Pages: intp(200), Status: models.StatusNotStarted}
	sessions := []*models.ReadingSession{
		session(intp(1), intp(51)),   // 50 pages
		session(intp(51), intp(111)), // 60 pages
	}

	res := Compute(book, sessions)
	require.NotNil(t, res.Progress)
	assert.Equal(t, 55, *res.Progress)
	assert.Equal(t, models.StatusInProgress, res.Status)
}

func TestCompute_ClampsAtOneHundred(t *testing.T) {
	t.Parallel()

	book := &models.Book{Pages: intp(100), Status: models.StatusInProgress}
	sessions := []*models.ReadingSession{
		session(intp(0), intp(80)),
		session(intp(60), intp(110)),
	}

	res := Compute(book, sessions)
	require.NotNil(t, res.Progress)
	assert.Equal(t, 100, *res.Progress)
	assert.Equal(t, models.StatusCompleted, res.Status)
}

func TestCompute_SessionsMissingPageMarkersContributeZero(t *testing.T) {
	t.Parallel()

	book := &models.Book{Pages: intp(100), Status: models.StatusNotStarted}
	sessions := []*models.ReadingSession{
		session(intp(10), nil),
		session(nil, intp(40)),
		session(intp(10), intp(35)),
	}

	res := Compute(book, sessions)
	require.NotNil(t, res.Progress)
	assert.Equal(t, 25, *res.Progress)
	assert.Equal(t, models.StatusInProgress, res.Status)
}

func TestCompute_ZeroSumLeavesStatusUnchanged(t *testing.T) {
	t.Parallel()

	book := &models.Book{Pages: intp(100), Status: models.StatusCompleted}
	sessions := []*models.ReadingSession{
		session(nil, nil),
	}

	res := Compute(book, sessions)
	require.NotNil(t, res.Progress)
	assert.Equal(t, 0, *res.Progress)
	assert.Equal(t, models.StatusCompleted, res.Status, "zero progress must not force the status backward")
}

func TestCompute_NegativeDeltaPassesThrough(t *testing.T) {
	t.Parallel()

	// end_page < start_page is accepted as stored; only the upper bound is
	// clamped.
	book := &models.Book{Pages: intp(100), Status: models.StatusNotStarted}
	sessions := []*models.ReadingSession{
		session(intp(50), intp(30)),
	}

	res := Compute(book, sessions)
	require.NotNil(t, res.Progress)
	assert.Equal(t, -20, *res.Progress)
	assert.Equal(t, models.StatusNotStarted, res.Status)
}

func TestCompute_NoPageCount(t *testing.T) {
	t.Parallel()

	book := &models.Book{Status: models.StatusNotStarted}
	sessions := []*models.ReadingSession{
		session(intp(1), intp(20)),
	}

	res := Compute(book, sessions)
	assert.Nil(t, res.Progress, "no percentage without a total page count")
	assert.Equal(t, models.StatusInProgress, res.Status)
}

func TestCompute_NoPageCountAndNoContributingPages(t *testing.T) {
	t.Parallel()

	book := &models.Book{Status: models.StatusNotStarted}
	sessions := []*models.ReadingSession{
		session(nil, nil),
	}

	res := Compute(book, sessions)
	assert.Nil(t, res.Progress)
	assert.Equal(t, models.StatusNotStarted, res.Status)
}

func TestCompute_ZeroPageCountTreatedAsUncomputable(t *testing.T) {
	t.Parallel()

	book := &models.Book{Pages: intp(0), Status: models.StatusNotStarted}
	sessions := []*models.ReadingSession{
		session(intp(1), intp(10)),
	}

	res := Compute(book, sessions)
	assert.Nil(t, res.Progress)
	assert.Equal(t, models.StatusInProgress, res.Status)
}

func TestCompute_RoundsToNearestPercent(t *testing.T) {
	t.Parallel()

	book := &models.Book{Pages: intp(3), Status: models.StatusNotStarted}
	sessions := []*models.ReadingSession{
		session(intp(0), intp(1)), // 1/3 => 33.33...
	}

	res := Compute(book, sessions)
	require.NotNil(t, res.Progress)
	assert.Equal(t, 33, *res.Progress)
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	book := &models.Book{Pages: intp(200), Status: models.StatusNotStarted}
	sessions := []*models.ReadingSession{
		session(intp(1), intp(111)),
	}

	first := Compute(book, sessions)
	book.Progress = first.Progress
	book.Status = first.Status

	second := Compute(book, sessions)
	require.NotNil(t, second.Progress)
	assert.Equal(t, *first.Progress, *second.Progress)
	assert.Equal(t, first.Status, second.Status)
}
