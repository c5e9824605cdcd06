package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/qualification"
)

type qualificationApi struct {
	svc      *qualification.Service
	validate *validator.Validate
}

type categoryQuery struct {
	Category string `query:"category" json:"category" validate:"omitempty,qualcategory"`
}

func registerQualificationAPI(g *echo.Group, deps ServerDeps) {
	api := qualificationApi{
		svc:      deps.QualificationSvc,
		validate: deps.Validate,
	}

	g.GET("", api.list)
	g.POST("", api.create)
	g.PUT("/:qid", api.update)
	g.DELETE("/:qid", api.destroy)
}

// Handlers

func (api *qualificationApi) list(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var q categoryQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to categoryQuery")
	}
	q.Category = core.CleanString(q.Category, true /* lower */)
	if err := api.validate.Struct(q); err != nil {
		return err
	}

	if q.Category == "" {
		quals, err := api.svc.ListPartitioned(ctx.Request().Context(), t.ID)
		if err != nil {
			return errors.Wrap(err, "listing qualifications")
		}
		return ctx.JSON(http.StatusOK, quals)
	}
	quals, err := api.svc.ByCategory(ctx.Request().Context(), t.ID, qualification.Category(q.Category))
	if err != nil {
		return errors.Wrap(err, "listing qualifications by category")
	}
	return ctx.JSON(http.StatusOK, quals)
}

func (api *qualificationApi) create(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var data qualification.NewQualification
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQualification")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	q, err := api.svc.Add(ctx.Request().Context(), t.ID, data)
	if err != nil {
		return errors.Wrap(err, "adding qualification")
	}
	return ctx.JSON(http.StatusCreated, q)
}

func (api *qualificationApi) update(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var data qualification.UpdateQualification
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateQualification")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	q, err := api.svc.Replace(ctx.Request().Context(), t.ID, ctx.Param("qid"), data)
	if err != nil {
		return errors.Wrap(err, "replacing qualification")
	}
	return ctx.JSON(http.StatusOK, q)
}

func (api *qualificationApi) destroy(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	if err := api.svc.Remove(ctx.Request().Context(), t.ID, ctx.Param("qid")); err != nil {
		return errors.Wrap(err, "removing qualification")
	}
	return ctx.NoContent(http.StatusNoContent)
}
