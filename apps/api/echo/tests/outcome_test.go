package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmpssainta/sainta/core/outcome"
)

func Test_outcomeApi_query(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"all outcomes", "/v1/outcomes", 3},
		{"search by task name", "/v1/outcomes?search=story", 1},
		{"search by student", "/v1/outcomes?search=siti", 1},
		{"search by course", "/v1/outcomes?search=algoritma", 1},
		{"search by nim", "/v1/outcomes?search=2021003", 1},
		{"no match", "/v1/outcomes?search=nope", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			var outcomes []outcome.Outcome
			unmarchallObj(t, rec.Body.Bytes(), &outcomes)
			assert.Len(t, outcomes, tt.want)
		})
	}

	t.Run("course catalog", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/courses")
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var courses []outcome.Course
		unmarchallObj(t, rec.Body.Bytes(), &courses)
		assert.Len(t, courses, 16)
		assert.Equal(t, "mk1", courses[0].ID)
	})
}

func Test_outcomeApi_create(t *testing.T) {
	app := setup(t)

	t.Run("status defaults to belum", func(t *testing.T) {
		body := marchallObj(t, outcome.NewOutcome{
			Nama:      "Tugas 3 - Dashboard",
			Matkul:    "Data Governance",
			Mahasiswa: "Lina Khotimah",
			NIM:       "2021015",
			Deadline:  "2025-12-31",
		})
		req, rec := newRequest(http.MethodPost, "/v1/outcomes", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var o outcome.Outcome
		unmarchallObj(t, rec.Body.Bytes(), &o)
		assert.Equal(t, outcome.StatusBelum, o.Status)

		assert.Equal(t, 4, listLen(t, app, "/v1/outcomes"))
	})

	t.Run("missing deadline leaves the listing unchanged", func(t *testing.T) {
		body := marchallObj(t, outcome.NewOutcome{
			Nama:      "Tanpa Deadline",
			Matkul:    "Statistika dan Probabilitas",
			Mahasiswa: "Sifa Sabrina",
			NIM:       "2021016",
		})
		req, rec := newRequest(http.MethodPost, "/v1/outcomes", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		unmarchallObj(t, rec.Body.Bytes(), &fldErrs)
		assert.Contains(t, fldErrs, "deadline")

		assert.Equal(t, 4, listLen(t, app, "/v1/outcomes"))
	})
}
