package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/agenda"
)

type agendaApi struct {
	svc      agenda.Service
	validate *validator.Validate
}

func registerAgendaAPI(g *echo.Group, admin echo.MiddlewareFunc, svc agenda.Service, validate *validator.Validate) {
	api := agendaApi{svc: svc, validate: validate}

	ag := g.Group("/agenda")
	ag.GET("", api.query)
	ag.POST("", api.create, admin)
}

func (api *agendaApi) query(ctx echo.Context) error {
	var filter agenda.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	items, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying agenda")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *agendaApi) create(ctx echo.Context) error {
	var data agenda.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	it, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating agenda item")
	}
	return ctx.JSON(http.StatusCreated, it)
}
