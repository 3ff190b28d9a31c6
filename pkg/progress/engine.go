// Package progress derives a book's page-progress percentage and lifecycle
// status from its raw reading-session history. The engine is stateless and
// pure: callers load the rows, the engine does the arithmetic.
package progress

import (
	"math"

	"github.com/tsundoku-app/tsundoku/pkg/models"
)

// Result is the derived progress for a single book. Progress is nil when the
// book has no usable total page count, since no percentage can be computed.
type Result struct {
	Progress *int
	Status   string
}

// Update is the wire shape reported for each recomputed book.
type Update struct {
	ID       int    `json:"id"`
	Progress *int   `json:"progress"`
	Status   string `json:"status"`
}

// Compute derives progress and status for one book from its sessions.
//
// Page deltas are summed over sessions that carry both page markers; the sum
// is not deduplicated against overlapping ranges, so re-read pages count
// twice. The percentage is clamped at 100 but not below 0: a session stored
// with end_page < start_page passes through as a negative contribution.
// Status only ever advances; a zero sum leaves the book's current status in
// place rather than forcing it back to not_started.
func Compute(book *models.Book, sessions []*models.ReadingSession) Result {
	pagesRead := 0
	for _, s := range sessions {
		pagesRead += s.PagesRead()
	}

	if !book.HasPageCount() {
		// No percentage without a page count, but the status is still
		// derivable from the session history.
		status := book.Status
		if pagesRead > 0 {
			status = models.StatusInProgress
		}
		return Result{Progress: nil, Status: status}
	}

	pct := int(math.Round(float64(pagesRead) / float64(*book.Pages) * 100))
	if pct > 100 {
		pct = 100
	}

	status := book.Status
	switch {
	case pct == 100:
		status = models.StatusCompleted
	case pct > 0:
		status = models.StatusInProgress
	}

	return Result{Progress: &pct, Status: status}
}
