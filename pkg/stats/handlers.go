package stats

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	statsService *Service
}

func (h *handler) catalog(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.statsService.CatalogReport(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, report))
}

func (h *handler) sessions(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.statsService.SessionReport(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, report))
}
