package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/dashboard"
	"github.com/trezcool/tutordesk/core/teacher"
)

type teacherApi struct {
	svc          *teacher.Service
	dashboardSvc *dashboard.Service
	validate     *validator.Validate
}

func newTeacherApi(deps ServerDeps) *teacherApi {
	return &teacherApi{
		svc:          deps.TeacherSvc,
		dashboardSvc: deps.DashboardSvc,
		validate:     deps.Validate,
	}
}

func registerTeacherAPI(g *echo.Group, deps ServerDeps) {
	api := newTeacherApi(deps)
	g.GET("", api.query)
}

func registerTeacherDetailAPI(g *echo.Group, deps ServerDeps) {
	api := newTeacherApi(deps)
	g.GET("", api.retrieve)
	g.PUT("", api.update)
	g.GET("/profile", api.profile)
}

// Handlers

func (api *teacherApi) query(ctx echo.Context) error {
	var filter teacher.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to teacher.QueryFilter")
	}
	if err := filter.Validate(api.validate); err != nil {
		return err
	}

	var ord Ordering
	ord.Bind(ctx)

	teachers, err := api.svc.Query(ctx.Request().Context(), filter, ord.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *teacherApi) retrieve(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) update(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var data teacher.UpdateTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTeacher")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	t, err = api.svc.Update(ctx.Request().Context(), t.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating teacher")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *teacherApi) profile(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	p, err := api.dashboardSvc.Profile(ctx.Request().Context(), t)
	if err != nil {
		return errors.Wrap(err, "composing profile")
	}
	return ctx.JSON(http.StatusOK, p)
}
