package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/org"
)

type orgApi struct {
	svc      org.Service
	validate *validator.Validate
}

func registerOrgAPI(g *echo.Group, admin echo.MiddlewareFunc, svc org.Service, validate *validator.Validate) {
	api := orgApi{svc: svc, validate: validate}

	og := g.Group("/profile")
	og.GET("", api.retrieveProfile)
	og.PUT("", api.updateProfile, admin)
	og.GET("/structure", api.queryStructure)
	og.GET("/contact", api.retrieveContact)
}

func (api *orgApi) retrieveProfile(ctx echo.Context) error {
	p, err := api.svc.Profile()
	if err != nil {
		return errors.Wrap(err, "retrieving profile")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *orgApi) updateProfile(ctx echo.Context) error {
	var data org.UpdateProfile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	orig, err := api.svc.Profile()
	if err != nil {
		return errors.Wrap(err, "retrieving profile")
	}
	if err = data.Validate(orig, api.validate); err != nil {
		return err
	}

	p, err := api.svc.Update(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "updating profile")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *orgApi) queryStructure(ctx echo.Context) error {
	positions, err := api.svc.Structure()
	if err != nil {
		return errors.Wrap(err, "querying structure")
	}
	return ctx.JSON(http.StatusOK, positions)
}

func (api *orgApi) retrieveContact(ctx echo.Context) error {
	c, err := api.svc.Contact()
	if err != nil {
		return errors.Wrap(err, "retrieving contact")
	}
	return ctx.JSON(http.StatusOK, c)
}
