package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/dashboard"
)

func registerDashboardAPI(g *echo.Group, deps ServerDeps) {
	g.GET("/dashboard", overview(deps.DashboardSvc))
}

func overview(svc *dashboard.Service) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ov, err := svc.Overview(ctx.Request().Context())
		if err != nil {
			return errors.Wrap(err, "computing overview")
		}
		return ctx.JSON(http.StatusOK, ov)
	}
}
