package sessions

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/tsundoku-app/tsundoku/pkg/errcodes"
	"github.com/tsundoku-app/tsundoku/pkg/models"
	"github.com/tsundoku-app/tsundoku/pkg/progress"
)

type handler struct {
	sessionService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateSessionPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if params.StartPage != nil && params.EndPage != nil && *params.EndPage < *params.StartPage {
		return errcodes.ValidationError("\"end_page\" must not be before \"start_page\"")
	}

	session := &models.ReadingSession{
		BookID:              params.BookID,
		StartTime:           params.StartTime,
		EndTime:             params.EndTime,
		StartPage:           params.StartPage,
		EndPage:             params.EndPage,
		Location:            params.Location,
		ReadingFormat:       params.ReadingFormat,
		ComprehensionRating: params.ComprehensionRating,
		EnergyLevel:         params.EnergyLevel,
		Distractions:        params.Distractions,
		Notes:               params.Notes,
	}

	if err := h.sessionService.CreateSession(ctx, session); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, session))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	sessions, err := h.sessionService.ListSessions(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, sessions))
}

func (h *handler) calculateProgress(c echo.Context) error {
	ctx := c.Request().Context()

	updates, err := h.sessionService.CalculateProgress(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		UpdatedBooks []progress.Update `json:"updated_books"`
	}{updates}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}
