package echoapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/payment"
)

type paymentApi struct {
	svc      *payment.Service
	validate *validator.Validate
}

func registerPaymentMethodsAPI(g *echo.Group, deps ServerDeps) {
	g.GET("/payments/methods", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, deps.PaymentSvc.PayoutMethods())
	})
}

func registerPaymentAPI(g *echo.Group, deps ServerDeps) {
	api := paymentApi{
		svc:      deps.PaymentSvc,
		validate: deps.Validate,
	}

	g.GET("", api.list)
	g.GET("/summary", api.summary)
	g.GET("/export", api.export)
	g.POST("/requests", api.request)
}

// Handlers

func (api *paymentApi) list(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var filter payment.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to payment.QueryFilter")
	}
	if err := filter.Validate(api.validate); err != nil {
		return err
	}

	txs, err := api.svc.List(ctx.Request().Context(), t.ID, filter)
	if err != nil {
		return errors.Wrap(err, "listing transactions")
	}
	return ctx.JSON(http.StatusOK, txs)
}

func (api *paymentApi) summary(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	sum, err := api.svc.Summary(ctx.Request().Context(), t)
	if err != nil {
		return errors.Wrap(err, "summarizing payments")
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *paymentApi) export(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	txs, err := api.svc.List(ctx.Request().Context(), t.ID, payment.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "listing transactions")
	}

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	resp.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "transactions-"+t.ID+".csv"))
	resp.WriteHeader(http.StatusOK)
	return payment.WriteCSV(resp, txs)
}

func (api *paymentApi) request(ctx echo.Context) error {
	t, err := getContextTeacher(ctx)
	if err != nil {
		return err
	}

	var data payment.PaymentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PaymentRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tx, err := api.svc.RequestPayment(ctx.Request().Context(), t, data)
	if err != nil {
		return errors.Wrap(err, "requesting payment")
	}
	return ctx.JSON(http.StatusCreated, tx)
}
