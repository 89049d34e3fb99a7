package gallery

import (
	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

// DefaultFotografer is credited when the uploader leaves the field empty.
const DefaultFotografer = "Tim MEDPRO"

type Photo struct {
	ID         int64  `json:"id"`
	Judul      string `json:"judul"`
	Deskripsi  string `json:"deskripsi,omitempty"`
	Kategori   string `json:"kategori"`
	Tanggal    string `json:"tanggal"` // YYYY-MM-DD
	Fotografer string `json:"fotografer"`
	ImageURL   string `json:"imageUrl"`
}

// NewPhoto contains information needed to add a Photo to the gallery. The
// image itself travels separately as a core.File.
type NewPhoto struct {
	Judul      string `json:"judul" validate:"required"`
	Deskripsi  string `json:"deskripsi"`
	Kategori   string `json:"kategori" validate:"required,oneof=Seminar Workshop Pelatihan Kompetisi Keakraban Rapat Lainnya"`
	Tanggal    string `json:"tanggal"`
	Fotografer string `json:"fotografer"`
}

// Validate cleans and checks the metadata. An empty title is pre-filled from
// the selected file's name; a caller-provided title is never overwritten.
func (np *NewPhoto) Validate(validate *validator.Validate, f core.File) error {
	np.Judul = core.CleanString(np.Judul)
	if np.Judul == "" && f.Name != "" {
		np.Judul = core.TitleFromFilename(f.Name)
	}
	np.Deskripsi = core.CleanString(np.Deskripsi)
	np.Tanggal = core.CleanString(np.Tanggal)
	np.Fotografer = core.CleanString(np.Fotografer)
	if np.Fotografer == "" {
		np.Fotografer = DefaultFotografer
	}
	return validate.Struct(np)
}

type QueryFilter struct {
	Kategori string `query:"kategori"`
}

func (qf *QueryFilter) Clean() {
	qf.Kategori = core.CleanString(qf.Kategori)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Kategori == "" || qf.Kategori == "all"
}

func (qf *QueryFilter) Match(p Photo) bool {
	return qf.IsEmpty() || p.Kategori == qf.Kategori
}
