package document

import (
	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

// Categories
const (
	KategoriADART      = "AD/ART"
	KategoriSOP        = "SOP"
	KategoriProposal   = "Proposal"
	KategoriLPJ        = "LPJ"
	KategoriTataTertib = "Tata Tertib"
	KategoriLainnya    = "Lainnya"
)

var AllCategories = []string{
	KategoriADART, KategoriSOP, KategoriProposal, KategoriLPJ, KategoriTataTertib, KategoriLainnya,
}

type Document struct {
	ID            int64  `json:"id"`
	Nama          string `json:"nama"`
	Kategori      string `json:"kategori"`
	TanggalUpload string `json:"tanggalUpload"` // YYYY-MM-DD
	URL           string `json:"url"`
}

// NewDocument contains information needed to file a new Document. The file
// itself travels separately as a core.File.
type NewDocument struct {
	Nama     string `json:"nama" validate:"required"`
	Kategori string `json:"kategori" validate:"required,dokkategori"`
}

// Validate cleans and checks the metadata. An empty name is pre-filled from
// the selected file's name; a caller-provided name is never overwritten.
func (nd *NewDocument) Validate(validate *validator.Validate, f core.File) error {
	nd.Nama = core.CleanString(nd.Nama)
	if nd.Nama == "" && f.Name != "" {
		nd.Nama = core.TitleFromFilename(f.Name)
	}
	nd.Kategori = core.CleanString(nd.Kategori)
	return validate.Struct(nd)
}
