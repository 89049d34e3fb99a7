package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/document"
)

type documentApi struct {
	svc      document.Service
	validate *validator.Validate
}

func registerDocumentAPI(g *echo.Group, admin echo.MiddlewareFunc, svc document.Service, validate *validator.Validate) {
	api := documentApi{svc: svc, validate: validate}

	dg := g.Group("/documents")
	dg.GET("", api.query)
	dg.GET("/categories", api.queryCategories)
	dg.POST("", api.create, admin)
}

func (api *documentApi) query(ctx echo.Context) error {
	docs, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying documents")
	}
	return ctx.JSON(http.StatusOK, docs)
}

func (api *documentApi) queryCategories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, document.AllCategories)
}

// create takes a multipart form: a "file" slot plus the document fields.
func (api *documentApi) create(ctx echo.Context) error {
	f, err := formFile(ctx, "file")
	if err != nil {
		return err
	}
	data := document.NewDocument{
		Nama:     ctx.FormValue("nama"),
		Kategori: ctx.FormValue("kategori"),
	}
	if err = data.Validate(api.validate, f); err != nil {
		return err
	}

	d, err := api.svc.Create(ctx.Request().Context(), data, f)
	if err != nil {
		return errors.Wrap(err, "creating document")
	}
	return ctx.JSON(http.StatusCreated, d)
}
