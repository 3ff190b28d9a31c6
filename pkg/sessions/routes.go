package sessions

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers reading session routes on a
// pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	h := &handler{
		sessionService: NewService(db),
	}

	g.POST("", h.create)
	g.GET("", h.list)
	g.POST("/calculate-progress", h.calculateProgress)
}
