package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/video"
)

type videoApi struct {
	svc      video.Service
	validate *validator.Validate
}

func registerVideoAPI(g *echo.Group, admin echo.MiddlewareFunc, svc video.Service, validate *validator.Validate) {
	api := videoApi{svc: svc, validate: validate}

	vg := g.Group("/videos")
	vg.GET("", api.query)
	vg.POST("", api.create, admin)
}

func (api *videoApi) query(ctx echo.Context) error {
	videos, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying videos")
	}
	return ctx.JSON(http.StatusOK, videos)
}

// create takes a multipart form: a "video" file slot, an optional "thumbnail"
// slot and the video fields.
func (api *videoApi) create(ctx echo.Context) error {
	f, err := formFile(ctx, "video")
	if err != nil {
		return err
	}
	thumb, err := formFile(ctx, "thumbnail")
	if err != nil {
		return err
	}
	data := video.NewVideo{
		Judul:     ctx.FormValue("judul"),
		Deskripsi: ctx.FormValue("deskripsi"),
		Pembicara: ctx.FormValue("pembicara"),
		Tanggal:   ctx.FormValue("tanggal"),
		Durasi:    ctx.FormValue("durasi"),
	}
	if err = data.Validate(api.validate, f); err != nil {
		return err
	}

	v, err := api.svc.Create(ctx.Request().Context(), data, f, thumb)
	if err != nil {
		return errors.Wrap(err, "creating video")
	}
	return ctx.JSON(http.StatusCreated, v)
}
