package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmpssainta/sainta/core/agenda"
)

func Test_agendaApi_query(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"all items", "/v1/agenda", 4},
		{"upcoming only", "/v1/agenda?status=upcoming", 3},
		{"completed only", "/v1/agenda?status=completed", 1},
		{"status all passes everything", "/v1/agenda?status=all", 4},
		{"status is case-insensitive", "/v1/agenda?status=Completed", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			var items []agenda.Item
			unmarchallObj(t, rec.Body.Bytes(), &items)
			assert.Len(t, items, tt.want)
		})
	}
}

func Test_agendaApi_create(t *testing.T) {
	app := setup(t)

	t.Run("status defaults to upcoming", func(t *testing.T) {
		body := marchallObj(t, agenda.NewItem{
			Judul:   "Rapat Kerja",
			Tanggal: "2025-12-20",
			Waktu:   "13:00 WIB",
			Lokasi:  "Ruang B2",
			Peserta: 30,
		})
		req, rec := newRequest(http.MethodPost, "/v1/agenda", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var it agenda.Item
		unmarchallObj(t, rec.Body.Bytes(), &it)
		assert.Equal(t, agenda.StatusUpcoming, it.Status)
		assert.NotZero(t, it.ID)

		assert.Equal(t, 5, listLen(t, app, "/v1/agenda"))
	})

	t.Run("missing required fields leave the agenda unchanged", func(t *testing.T) {
		body := marchallObj(t, agenda.NewItem{Judul: "Tanpa Jadwal"})
		req, rec := newRequest(http.MethodPost, "/v1/agenda", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		unmarchallObj(t, rec.Body.Bytes(), &fldErrs)
		assert.Contains(t, fldErrs, "tanggal")
		assert.Contains(t, fldErrs, "waktu")
		assert.Contains(t, fldErrs, "lokasi")

		assert.Equal(t, 5, listLen(t, app, "/v1/agenda"))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		body := marchallObj(t, agenda.NewItem{
			Judul:   "Status Aneh",
			Tanggal: "2025-12-21",
			Waktu:   "08:00 WIB",
			Lokasi:  "Aula",
			Status:  "postponed",
		})
		req, rec := newRequest(http.MethodPost, "/v1/agenda", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
