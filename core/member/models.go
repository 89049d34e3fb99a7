package member

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

// Divisions
const (
	DivisiBPH    = "BPH"
	DivisiPSDI   = "PSDI"
	DivisiKBA    = "KBA"
	DivisiRiset  = "Riset"
	DivisiMedpro = "MEDPRO"
)

var AllDivisions = []string{DivisiBPH, DivisiPSDI, DivisiKBA, DivisiRiset, DivisiMedpro}

type Member struct {
	ID       int64  `json:"id"`
	Nama     string `json:"nama"`
	NIM      string `json:"nim"`
	Angkatan string `json:"angkatan"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Divisi   string `json:"divisi"`
	Jabatan  string `json:"jabatan,omitempty"`
}

// NewMember contains information needed to register a new Member.
type NewMember struct {
	Nama     string `json:"nama" validate:"required"`
	NIM      string `json:"nim" validate:"required"`
	Angkatan string `json:"angkatan" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Divisi   string `json:"divisi" validate:"required,oneof=BPH PSDI KBA Riset MEDPRO"`
	Jabatan  string `json:"jabatan"`
}

func (nm *NewMember) Validate(validate *validator.Validate) error {
	nm.Nama = core.CleanString(nm.Nama)
	nm.NIM = core.CleanString(nm.NIM)
	nm.Angkatan = core.CleanString(nm.Angkatan)
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.Phone = core.CleanString(nm.Phone)
	nm.Jabatan = core.CleanString(nm.Jabatan)
	return validate.Struct(nm)
}

// QueryFilter narrows a member listing. All set fields must match (AND).
type QueryFilter struct {
	Search string `query:"search"`
	Divisi string `query:"divisi"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Divisi = core.CleanString(qf.Divisi)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && (qf.Divisi == "" || qf.Divisi == "all")
}

// Match reports whether m passes the filter. Search does a case-insensitive
// match on Nama and a plain substring match on NIM; Divisi is an exact match
// with "all" (or empty) passing everything through.
func (qf *QueryFilter) Match(m Member) bool {
	if qf.Search != "" {
		if !strings.Contains(strings.ToLower(m.Nama), strings.ToLower(qf.Search)) &&
			!strings.Contains(m.NIM, qf.Search) {
			return false
		}
	}
	if qf.Divisi != "" && qf.Divisi != "all" && m.Divisi != qf.Divisi {
		return false
	}
	return true
}
