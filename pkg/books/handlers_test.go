package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsundoku-app/tsundoku/pkg/binder"
	"github.com/tsundoku-app/tsundoku/pkg/errcodes"
	"github.com/tsundoku-app/tsundoku/pkg/models"
	"github.com/uptrace/bun"
)

func newBooksTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func createTestBook(t *testing.T, db *bun.DB, book *models.Book) *models.Book {
	t.Helper()

	require.NoError(t, NewService(db).CreateBook(context.Background(), book))
	return book
}

func TestHandlerList_ReturnsArray(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	h := &handler{bookService: NewService(db)}

	createTestBook(t, db, &models.Book{Title: "Dune", Author: "Frank Herbert"})
	createTestBook(t, db, &models.Book{Title: "Hyperion", Author: "Dan Simmons"})

	c, rr := newBooksTestContext(t, http.MethodGet, "/api/books", "")
	require.NoError(t, h.list(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	var books []*models.Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &books))
	assert.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestHandlerRetrieve_NotFound(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, _ := newBooksTestContext(t, http.MethodGet, "/api/books/999", "")
	c.SetPath("/api/books/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.retrieve(c)
	require.ErrorIs(t, err, errcodes.NotFound("Book"))
}

func TestHandlerUpdateStatus_UnrecognizedValueSucceeds(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	h := &handler{bookService: NewService(db)}

	book := createTestBook(t, db, &models.Book{Title: "Dune", Author: "Frank Herbert"})

	c, rr := newBooksTestContext(t, http.MethodPut, "/api/books/"+strconv.Itoa(book.ID)+"/status", `{"status":"definitely_not_a_status"}`)
	c.SetPath("/api/books/:id/status")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(book.ID))

	require.NoError(t, h.updateStatus(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated models.Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "definitely_not_a_status", updated.Status)
}

func TestHandlerUpdateStatus_MissingStatusRejected(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	h := &handler{bookService: NewService(db)}

	book := createTestBook(t, db, &models.Book{Title: "Dune", Author: "Frank Herbert"})

	c, _ := newBooksTestContext(t, http.MethodPut, "/api/books/"+strconv.Itoa(book.ID)+"/status", `{}`)
	c.SetPath("/api/books/:id/status")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(book.ID))

	err := h.updateStatus(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "validation_error", codeErr.Code)
}

func TestHandlerComplete_ReturnsMessageAndBook(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	h := &handler{bookService: NewService(db)}

	book := createTestBook(t, db, &models.Book{Title: "Dune", Author: "Frank Herbert", Pages: intp(412)})

	c, rr := newBooksTestContext(t, http.MethodPost, "/api/books/"+strconv.Itoa(book.ID)+"/complete", "")
	c.SetPath("/api/books/:id/complete")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(book.ID))

	require.NoError(t, h.complete(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Message string       `json:"message"`
		Book    *models.Book `json:"book"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Book marked as completed", resp.Message)
	require.NotNil(t, resp.Book)
	assert.Equal(t, models.StatusCompleted, resp.Book.Status)
	require.NotNil(t, resp.Book.Progress)
	assert.Equal(t, 100, *resp.Book.Progress)
}

func TestHandlerSearch_SubstringMatch(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	h := &handler{bookService: NewService(db)}

	createTestBook(t, db, &models.Book{Title: "Dune", Author: "Frank Herbert"})
	createTestBook(t, db, &models.Book{Title: "Dune Messiah", Author: "Frank Herbert"})
	createTestBook(t, db, &models.Book{Title: "Hyperion", Author: "Dan Simmons"})

	c, rr := newBooksTestContext(t, http.MethodGet, "/api/books/search/dune", "")
	c.SetPath("/api/books/search/:query")
	c.SetParamNames("query")
	c.SetParamValues("dune")

	require.NoError(t, h.search(c))
	assert.Equal(t, http.StatusOK, rr.Code)

	var books []*models.Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &books))
	assert.Len(t, books, 2)
}

func TestHandlerCreate_AdministrativeInsert(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, rr := newBooksTestContext(t, http.MethodPost, "/api/books", `{"title":"Dune","author":"Frank Herbert","pages":412,"genre":"Science Fiction"}`)

	require.NoError(t, h.create(c))
	assert.Equal(t, http.StatusCreated, rr.Code)

	var book models.Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &book))
	assert.NotZero(t, book.ID)
	assert.Equal(t, models.StatusNotStarted, book.Status)
	require.NotNil(t, book.Pages)
	assert.Equal(t, 412, *book.Pages)
}
