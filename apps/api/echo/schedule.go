package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/schedule"
)

type scheduleApi struct {
	svc      *schedule.Service
	validate *validator.Validate
}

type lookupQuery struct {
	Day  string `query:"day" json:"day" validate:"required,weekday"`
	Time string `query:"time" json:"time" validate:"required,hhmm"`
}

func registerScheduleAPI(g *echo.Group, deps ServerDeps) {
	api := scheduleApi{
		svc:      deps.ScheduleSvc,
		validate: deps.Validate,
	}

	g.GET("", api.list)
	g.GET("/grid", api.grid)
	g.GET("/lookup", api.lookup)
	g.POST("", api.create)
	g.PUT("/:sid", api.update)
	g.DELETE("/:sid", api.destroy)
}

// Handlers

func (api *scheduleApi) list(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	slots, err := api.svc.List(ctx.Request().Context(), t.ID)
	if err != nil {
		return errors.Wrap(err, "listing slots")
	}
	return ctx.JSON(http.StatusOK, slots)
}

func (api *scheduleApi) grid(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	g, err := api.svc.Grid(ctx.Request().Context(), t.ID)
	if err != nil {
		return errors.Wrap(err, "building grid")
	}
	return ctx.JSON(http.StatusOK, g)
}

func (api *scheduleApi) lookup(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var q lookupQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to lookupQuery")
	}
	if err := api.validate.Struct(q); err != nil {
		return err
	}

	slot, err := api.svc.Lookup(ctx.Request().Context(), t.ID, q.Day, q.Time)
	if err != nil {
		return errors.Wrap(err, "looking up slot")
	}
	return ctx.JSON(http.StatusOK, slot)
}

func (api *scheduleApi) create(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var data schedule.SlotInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SlotInput")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	slot, err := api.svc.Add(ctx.Request().Context(), t.ID, data)
	if err != nil {
		return errors.Wrap(err, "adding slot")
	}
	return ctx.JSON(http.StatusCreated, slot)
}

func (api *scheduleApi) update(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var data schedule.SlotInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SlotInput")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	slot, err := api.svc.Replace(ctx.Request().Context(), t.ID, ctx.Param("sid"), data)
	if err != nil {
		return errors.Wrap(err, "replacing slot")
	}
	return ctx.JSON(http.StatusOK, slot)
}

func (api *scheduleApi) destroy(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Remove(ctx.Request().Context(), t.ID, ctx.Param("sid")); err != nil {
		return errors.Wrap(err, "removing slot")
	}
	return ctx.NoContent(http.StatusNoContent)
}
