package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/tsundoku-app/tsundoku/pkg/binder"
	"github.com/tsundoku-app/tsundoku/pkg/books"
	"github.com/tsundoku-app/tsundoku/pkg/config"
	"github.com/tsundoku-app/tsundoku/pkg/errcodes"
	"github.com/tsundoku-app/tsundoku/pkg/sessions"
	"github.com/tsundoku-app/tsundoku/pkg/stats"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	e.GET("/", welcome)

	books.RegisterRoutesWithGroup(e.Group("/api/books"), db)
	sessions.RegisterRoutesWithGroup(e.Group("/api/sessions"), db)
	stats.RegisterRoutesWithGroup(e.Group("/api/stats"), db)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func welcome(c echo.Context) error {
	resp := struct {
		Message string `json:"message"`
	}{"Welcome to the Tsundoku API."}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
