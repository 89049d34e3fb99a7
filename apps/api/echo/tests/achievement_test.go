package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmpssainta/sainta/core/achievement"
)

func Test_achievementApi(t *testing.T) {
	app := setup(t)

	t.Run("seeded listing", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/achievements")
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var achievements []achievement.Achievement
		unmarchallObj(t, rec.Body.Bytes(), &achievements)
		assert.Len(t, achievements, 1)
		assert.Equal(t, "Best Presenter", achievements[0].Judul)
	})

	t.Run("valid achievement is appended", func(t *testing.T) {
		body := marchallObj(t, achievement.NewAchievement{
			Judul:     "Juara 2 Data Competition",
			Tahun:     2026,
			Deskripsi: "Tim HMPS meraih juara 2 pada kompetisi analisis data tingkat nasional.",
		})
		req, rec := newRequest(http.MethodPost, "/v1/achievements", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 2, listLen(t, app, "/v1/achievements"))
	})

	t.Run("tahun outside the accepted range is rejected", func(t *testing.T) {
		body := marchallObj(t, achievement.NewAchievement{
			Judul:     "Terlalu Lampau",
			Tahun:     2019,
			Deskripsi: "x",
		})
		req, rec := newRequest(http.MethodPost, "/v1/achievements", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		unmarchallObj(t, rec.Body.Bytes(), &fldErrs)
		assert.Contains(t, fldErrs, "tahun")

		assert.Equal(t, 2, listLen(t, app, "/v1/achievements"))
	})

	t.Run("missing deskripsi is rejected", func(t *testing.T) {
		body := marchallObj(t, achievement.NewAchievement{Judul: "Tanpa Cerita", Tahun: 2025})
		req, rec := newRequest(http.MethodPost, "/v1/achievements", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
