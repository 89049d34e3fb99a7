package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/gallery"
)

type galleryApi struct {
	svc      gallery.Service
	validate *validator.Validate
}

func registerGalleryAPI(g *echo.Group, admin echo.MiddlewareFunc, svc gallery.Service, validate *validator.Validate) {
	api := galleryApi{svc: svc, validate: validate}

	pg := g.Group("/photos")
	pg.GET("", api.query)
	pg.GET("/categories", api.queryCategories)
	pg.POST("", api.create, admin)
}

func (api *galleryApi) query(ctx echo.Context) error {
	var filter gallery.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	photos, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying photos")
	}
	return ctx.JSON(http.StatusOK, photos)
}

func (api *galleryApi) queryCategories(ctx echo.Context) error {
	cats, err := api.svc.Categories()
	if err != nil {
		return errors.Wrap(err, "querying photo categories")
	}
	return ctx.JSON(http.StatusOK, cats)
}

// create takes a multipart form: an "image" file slot plus the photo fields.
func (api *galleryApi) create(ctx echo.Context) error {
	f, err := formFile(ctx, "image")
	if err != nil {
		return err
	}
	data := gallery.NewPhoto{
		Judul:      ctx.FormValue("judul"),
		Deskripsi:  ctx.FormValue("deskripsi"),
		Kategori:   ctx.FormValue("kategori"),
		Tanggal:    ctx.FormValue("tanggal"),
		Fotografer: ctx.FormValue("fotografer"),
	}
	if err = data.Validate(api.validate, f); err != nil {
		return err
	}

	p, err := api.svc.Create(ctx.Request().Context(), data, f)
	if err != nil {
		return errors.Wrap(err, "creating photo")
	}
	return ctx.JSON(http.StatusCreated, p)
}
