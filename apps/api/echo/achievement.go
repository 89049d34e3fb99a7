package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/achievement"
)

type achievementApi struct {
	svc      achievement.Service
	validate *validator.Validate
}

func registerAchievementAPI(g *echo.Group, admin echo.MiddlewareFunc, svc achievement.Service, validate *validator.Validate) {
	api := achievementApi{svc: svc, validate: validate}

	ag := g.Group("/achievements")
	ag.GET("", api.query)
	ag.POST("", api.create, admin)
}

func (api *achievementApi) query(ctx echo.Context) error {
	achievements, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying achievements")
	}
	return ctx.JSON(http.StatusOK, achievements)
}

func (api *achievementApi) create(ctx echo.Context) error {
	var data achievement.NewAchievement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAchievement")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating achievement")
	}
	return ctx.JSON(http.StatusCreated, a)
}
