package stats

import (
	"math"

	"github.com/tsundoku-app/tsundoku/pkg/models"
)

type LibraryStats struct {
	TotalBooks        int     `json:"totalBooks"`
	CompletedBooks    int     `json:"completedBooks"`
	InProgressBooks   int     `json:"inProgressBooks"`
	TotalPages        int     `json:"totalPages"`
	AverageCompletion float64 `json:"averageCompletion"`
}

type GenreCount struct {
	Name      *string `json:"name"`
	Books     int     `json:"books"`
	Completed int     `json:"completed"`
}

type CurrentlyReadingBook struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Progress *int    `json:"progress"`
	Genre    *string `json:"genre"`
}

// CatalogReport is the book-centric view of the library.
type CatalogReport struct {
	LibraryStats     LibraryStats           `json:"libraryStats"`
	GenreData        []GenreCount           `json:"genreData"`
	CurrentlyReading []CurrentlyReadingBook `json:"currentlyReading"`
}

type BookPages struct {
	BookID    int    `json:"book_id"`
	Title     string `json:"title"`
	PagesRead int    `json:"pages_read"`
}

type LocationCount struct {
	Location     string `json:"location"`
	SessionCount int    `json:"session_count"`
}

// SessionReport is the session-centric view, with different field naming
// conventions than the catalog report.
type SessionReport struct {
	TotalReadingTime  int             `json:"totalReadingTime"`
	PagesPerBook      []BookPages     `json:"pagesPerBook"`
	ReadingByLocation []LocationCount `json:"readingByLocation"`
}

// BuildCatalogReport aggregates over books only; sessions never feed it.
// Genre groups appear in the order their genre is first seen, with books
// missing a genre collected under a null name.
func BuildCatalogReport(books []*models.Book) *CatalogReport {
	report := &CatalogReport{
		GenreData:        []GenreCount{},
		CurrentlyReading: []CurrentlyReadingBook{},
	}

	genreIndex := map[string]int{}
	nilIndex := -1

	for _, book := range books {
		report.LibraryStats.TotalBooks++
		if book.Pages != nil {
			report.LibraryStats.TotalPages += *book.Pages
		}

		completed := book.Status == models.StatusCompleted
		if completed {
			report.LibraryStats.CompletedBooks++
		}

		var idx int
		if book.Genre == nil {
			if nilIndex < 0 {
				nilIndex = len(report.GenreData)
				report.GenreData = append(report.GenreData, GenreCount{})
			}
			idx = nilIndex
		} else {
			var ok bool
			idx, ok = genreIndex[*book.Genre]
			if !ok {
				idx = len(report.GenreData)
				genreIndex[*book.Genre] = idx
				report.GenreData = append(report.GenreData, GenreCount{Name: book.Genre})
			}
		}
		report.GenreData[idx].Books++
		if completed {
			report.GenreData[idx].Completed++
		}

		if book.Status == models.StatusInProgress {
			report.LibraryStats.InProgressBooks++
			report.CurrentlyReading = append(report.CurrentlyReading, CurrentlyReadingBook{
				ID:       book.ID,
				Title:    book.Title,
				Progress: book.Progress,
				Genre:    book.Genre,
			})
		}
	}

	// averageCompletion is the completed-book ratio, not a mean of progress
	// percentages. Guard the empty catalog explicitly.
	if report.LibraryStats.TotalBooks > 0 {
		ratio := float64(report.LibraryStats.CompletedBooks) / float64(report.LibraryStats.TotalBooks) * 100
		report.LibraryStats.AverageCompletion = math.Round(ratio*10) / 10
	}

	return report
}

// BuildSessionReport aggregates over sessions. Books with no pages read are
// left out of pagesPerBook, and sessions without a location are left out of
// readingByLocation entirely.
func BuildSessionReport(books []*models.Book, sessions []*models.ReadingSession) *SessionReport {
	report := &SessionReport{
		PagesPerBook:      []BookPages{},
		ReadingByLocation: []LocationCount{},
	}

	titles := map[int]string{}
	for _, book := range books {
		titles[book.ID] = book.Title
	}

	pagesByBook := map[int]int{}
	bookOrder := []int{}
	locationIndex := map[string]int{}

	for _, session := range sessions {
		report.TotalReadingTime += session.Minutes()

		if _, ok := pagesByBook[session.BookID]; !ok {
			bookOrder = append(bookOrder, session.BookID)
		}
		pagesByBook[session.BookID] += session.PagesRead()

		if session.Location != nil {
			idx, ok := locationIndex[*session.Location]
			if !ok {
				idx = len(report.ReadingByLocation)
				locationIndex[*session.Location] = idx
				report.ReadingByLocation = append(report.ReadingByLocation, LocationCount{Location: *session.Location})
			}
			report.ReadingByLocation[idx].SessionCount++
		}
	}

	for _, bookID := range bookOrder {
		pagesRead := pagesByBook[bookID]
		if pagesRead <= 0 {
			continue
		}
		report.PagesPerBook = append(report.PagesPerBook, BookPages{
			BookID:    bookID,
			Title:     titles[bookID],
			PagesRead: pagesRead,
		})
	}

	return report
}
