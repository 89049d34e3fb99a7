package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/outcome"
)

type outcomeApi struct {
	svc      outcome.Service
	validate *validator.Validate
}

func registerOutcomeAPI(g *echo.Group, admin echo.MiddlewareFunc, svc outcome.Service, validate *validator.Validate) {
	api := outcomeApi{svc: svc, validate: validate}

	og := g.Group("/outcomes")
	og.GET("", api.query)
	og.POST("", api.create, admin)

	g.GET("/courses", api.queryCourses)
}

func (api *outcomeApi) query(ctx echo.Context) error {
	var filter outcome.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	outcomes, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying outcomes")
	}
	return ctx.JSON(http.StatusOK, outcomes)
}

func (api *outcomeApi) queryCourses(ctx echo.Context) error {
	courses, err := api.svc.Courses()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *outcomeApi) create(ctx echo.Context) error {
	var data outcome.NewOutcome
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewOutcome")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	o, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating outcome")
	}
	return ctx.JSON(http.StatusCreated, o)
}
