package org

import (
	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

type (
	// Profile is the organization's singleton description; the only record in
	// the system with an update operation.
	Profile struct {
		NamaOrganisasi string   `json:"namaOrganisasi"`
		TahunBerdiri   string   `json:"tahunBerdiri"`
		Visi           string   `json:"visi"`
		Misi           []string `json:"misi"`
		Deskripsi      string   `json:"deskripsi"`
	}

	// Position is one row of the organizational structure.
	Position struct {
		Jabatan string `json:"jabatan"`
		Nama    string `json:"nama"`
	}

	Contact struct {
		Email     string `json:"email"`
		Instagram string `json:"instagram"`
		Website   string `json:"website"`
		Whatsapp  string `json:"whatsapp"`
	}
)

// UpdateProfile defines what information may be provided to modify the
// Profile. Empty fields keep their current values.
type UpdateProfile struct {
	NamaOrganisasi string   `json:"namaOrganisasi"`
	TahunBerdiri   string   `json:"tahunBerdiri"`
	Visi           string   `json:"visi"`
	Misi           []string `json:"misi"`
	Deskripsi      string   `json:"deskripsi"`
}

func (up *UpdateProfile) Validate(orig Profile, validate *validator.Validate) error {
	if nama := core.CleanString(up.NamaOrganisasi); nama != "" {
		up.NamaOrganisasi = nama
	} else {
		up.NamaOrganisasi = orig.NamaOrganisasi
	}
	if tahun := core.CleanString(up.TahunBerdiri); tahun != "" {
		up.TahunBerdiri = tahun
	} else {
		up.TahunBerdiri = orig.TahunBerdiri
	}
	if visi := core.CleanString(up.Visi); visi != "" {
		up.Visi = visi
	} else {
		up.Visi = orig.Visi
	}
	if up.Misi == nil {
		up.Misi = orig.Misi
	}
	if desc := core.CleanString(up.Deskripsi); desc != "" {
		up.Deskripsi = desc
	} else {
		up.Deskripsi = orig.Deskripsi
	}
	return validate.Struct(up)
}
