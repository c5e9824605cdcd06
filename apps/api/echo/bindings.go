package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/tutordesk/core"
)

var orderingParam = "ordering"

type Ordering struct {
	Orderings []core.DBOrdering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	ord.Orderings = core.ParseOrderings(ctx.QueryParam(orderingParam))
}

type SuccessResponse struct {
	Success string `json:"success"`
}
