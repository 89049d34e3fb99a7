package agenda

import (
	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

// Item statuses
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

type Item struct {
	ID        int64  `json:"id"`
	Judul     string `json:"judul"`
	Tanggal   string `json:"tanggal"` // YYYY-MM-DD
	Waktu     string `json:"waktu"`   // free text, e.g. "14:00 WIB"
	Lokasi    string `json:"lokasi"`
	Deskripsi string `json:"deskripsi,omitempty"`
	Peserta   int    `json:"peserta"`
	Status    string `json:"status"`
}

// NewItem contains information needed to schedule a new agenda Item.
type NewItem struct {
	Judul     string `json:"judul" validate:"required"`
	Tanggal   string `json:"tanggal" validate:"required"`
	Waktu     string `json:"waktu" validate:"required"`
	Lokasi    string `json:"lokasi" validate:"required"`
	Deskripsi string `json:"deskripsi"`
	Peserta   int    `json:"peserta" validate:"min=0"`
	Status    string `json:"status" validate:"omitempty,oneof=upcoming completed"`
}

func (ni *NewItem) Validate(validate *validator.Validate) error {
	ni.Judul = core.CleanString(ni.Judul)
	ni.Tanggal = core.CleanString(ni.Tanggal)
	ni.Waktu = core.CleanString(ni.Waktu)
	ni.Lokasi = core.CleanString(ni.Lokasi)
	if ni.Status == "" {
		ni.Status = StatusUpcoming
	}
	return validate.Struct(ni)
}

type QueryFilter struct {
	Status string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Status == "" || qf.Status == "all"
}

func (qf *QueryFilter) Match(it Item) bool {
	return qf.IsEmpty() || it.Status == qf.Status
}
