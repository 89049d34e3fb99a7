package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmpssainta/sainta/core"
	"github.com/hmpssainta/sainta/core/member"
)

func Test_memberApi_query(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"all members", "/v1/members", 8},
		{"filter by divisi", "/v1/members?divisi=BPH", 6},
		{"divisi all passes everything", "/v1/members?divisi=all", 8},
		{"search by name", "/v1/members?search=fitri", 1},
		{"search by nim", "/v1/members?search=2021008", 1},
		{"search and divisi combine", "/v1/members?search=devi&divisi=BPH", 2},
		{"no match", "/v1/members?search=nope", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			var members []member.Member
			unmarchallObj(t, rec.Body.Bytes(), &members)
			assert.Len(t, members, tt.want)
		})
	}
}

func Test_memberApi_create(t *testing.T) {
	app := setup(t)

	t.Run("valid member is appended", func(t *testing.T) {
		body := marchallObj(t, member.NewMember{
			Nama:     "Putri Handayani",
			NIM:      "2025010",
			Angkatan: "2025",
			Email:    "putri@example.com",
			Divisi:   member.DivisiRiset,
		})
		req, rec := newRequest(http.MethodPost, "/v1/members", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var m member.Member
		unmarchallObj(t, rec.Body.Bytes(), &m)
		assert.NotZero(t, m.ID)
		assert.Equal(t, "Putri Handayani", m.Nama)

		assert.Equal(t, 9, listLen(t, app, "/v1/members"))
	})

	t.Run("missing required fields leave the roster unchanged", func(t *testing.T) {
		body := marchallObj(t, member.NewMember{Nama: "Tanpa NIM"})
		req, rec := newRequest(http.MethodPost, "/v1/members", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		unmarchallObj(t, rec.Body.Bytes(), &fldErrs)
		assert.Contains(t, fldErrs, "nim")
		assert.Contains(t, fldErrs, "email")
		assert.Contains(t, fldErrs, "divisi")

		assert.Equal(t, 9, listLen(t, app, "/v1/members"))
	})

	t.Run("invalid divisi is rejected", func(t *testing.T) {
		body := marchallObj(t, member.NewMember{
			Nama:     "Salah Divisi",
			NIM:      "2025011",
			Angkatan: "2025",
			Email:    "salah@example.com",
			Divisi:   "Humas",
		})
		req, rec := newRequest(http.MethodPost, "/v1/members", body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-admin role is forbidden", func(t *testing.T) {
		body := marchallObj(t, member.NewMember{
			Nama:     "Bukan Admin",
			NIM:      "2025012",
			Angkatan: "2025",
			Email:    "bukan@example.com",
			Divisi:   member.DivisiKBA,
		})
		tt := httpTest{
			method:   http.MethodPost,
			path:     "/v1/members",
			body:     body,
			role:     core.RoleMember,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, errForbidden),
		}
		req, rec := newRoleRequest(tt.method, tt.path, tt.role, tt.body)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)

		assert.Equal(t, 9, listLen(t, app, "/v1/members"))
	})
}
