package tests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmpssainta/sainta/core/gallery"
)

func Test_galleryApi_query(t *testing.T) {
	app := setup(t)

	t.Run("all photos", func(t *testing.T) {
		assert.Equal(t, 1, listLen(t, app, "/v1/photos"))
	})

	t.Run("filter by kategori", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/photos?kategori=Seminar")
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var photos []gallery.Photo
		unmarchallObj(t, rec.Body.Bytes(), &photos)
		assert.Len(t, photos, 1)
		assert.Equal(t, "Seminar", photos[0].Kategori)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Equal(t, 0, listLen(t, app, "/v1/photos?kategori=Workshop"))
	})

	t.Run("categories in first-seen order", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/photos/categories")
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var cats []string
		unmarchallObj(t, rec.Body.Bytes(), &cats)
		assert.Equal(t, []string{"Seminar"}, cats)
	})
}

func Test_galleryApi_create(t *testing.T) {
	app := setup(t)

	t.Run("photo upload resolves to a reference", func(t *testing.T) {
		req, rec := newMultipartRequest(t, http.MethodPost, "/v1/photos", "",
			map[string]string{"judul": "Workshop Python", "kategori": "Workshop"},
			formFile{field: "image", name: "workshop.jpg", contentType: "image/jpeg", size: 2048},
		)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var p gallery.Photo
		unmarchallObj(t, rec.Body.Bytes(), &p)
		assert.Equal(t, "Workshop Python", p.Judul)
		assert.Equal(t, gallery.DefaultFotografer, p.Fotografer)
		assert.True(t, strings.HasPrefix(p.ImageURL, "mem://photo/"), "imageUrl = %s", p.ImageURL)
		assert.NotEmpty(t, p.Tanggal)

		assert.Equal(t, 2, listLen(t, app, "/v1/photos"))
	})

	t.Run("empty title falls back to the file name", func(t *testing.T) {
		req, rec := newMultipartRequest(t, http.MethodPost, "/v1/photos", "",
			map[string]string{"kategori": "Keakraban"},
			formFile{field: "image", name: "makrab-2025.png", contentType: "image/png", size: 1024},
		)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var p gallery.Photo
		unmarchallObj(t, rec.Body.Bytes(), &p)
		assert.Equal(t, "makrab-2025", p.Judul)
	})

	t.Run("unsupported file type is rejected", func(t *testing.T) {
		req, rec := newMultipartRequest(t, http.MethodPost, "/v1/photos", "",
			map[string]string{"judul": "Bukan Gambar", "kategori": "Seminar"},
			formFile{field: "image", name: "notes.txt", contentType: "text/plain", size: 128},
		)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		unmarchallObj(t, rec.Body.Bytes(), &fldErrs)
		assert.Contains(t, fldErrs, "file")

		assert.Equal(t, 3, listLen(t, app, "/v1/photos"))
	})

	t.Run("unknown kategori is rejected", func(t *testing.T) {
		req, rec := newMultipartRequest(t, http.MethodPost, "/v1/photos", "",
			map[string]string{"judul": "Salah Kategori", "kategori": "Wisuda"},
			formFile{field: "image", name: "wisuda.jpg", contentType: "image/jpeg", size: 512},
		)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-admin role is forbidden", func(t *testing.T) {
		req, rec := newMultipartRequest(t, http.MethodPost, "/v1/photos", "member",
			map[string]string{"judul": "Diam-diam", "kategori": "Seminar"},
			formFile{field: "image", name: "x.jpg", contentType: "image/jpeg", size: 512},
		)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 3, listLen(t, app, "/v1/photos"))
	})
}
