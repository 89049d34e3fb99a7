package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/member"
)

type memberApi struct {
	svc      member.Service
	validate *validator.Validate
}

func registerMemberAPI(g *echo.Group, admin echo.MiddlewareFunc, svc member.Service, validate *validator.Validate) {
	api := memberApi{svc: svc, validate: validate}

	mg := g.Group("/members")
	mg.GET("", api.query)
	mg.POST("", api.create, admin)
}

func (api *memberApi) query(ctx echo.Context) error {
	var filter member.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	members, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying members")
	}
	return ctx.JSON(http.StatusOK, members)
}

func (api *memberApi) create(ctx echo.Context) error {
	var data member.NewMember
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMember")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	m, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating member")
	}
	return ctx.JSON(http.StatusCreated, m)
}
