package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core"
)

// formFile extracts a multipart file slot as a core.File. The mock submission
// backend only needs the name, declared media type and size; contents are
// never read. An absent slot yields a zero core.File and no error so optional
// slots (thumbnails) bind cleanly.
func formFile(ctx echo.Context, field string) (core.File, error) {
	hdr, err := ctx.FormFile(field)
	if err != nil {
		if errors.Cause(err) == http.ErrMissingFile {
			return core.File{}, nil
		}
		return core.File{}, errors.Wrapf(err, "reading form file %q", field)
	}
	return core.File{
		Name:        hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Size:        hdr.Size,
	}, nil
}
