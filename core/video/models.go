package video

import (
	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

// DefaultThumbnailURL backs videos uploaded without a thumbnail.
const DefaultThumbnailURL = "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=225&fit=crop"

type Video struct {
	ID        int64  `json:"id"`
	Judul     string `json:"judul"`
	Deskripsi string `json:"deskripsi,omitempty"`
	Pembicara string `json:"pembicara"`
	Tanggal   string `json:"tanggal"` // YYYY-MM-DD
	Durasi    string `json:"durasi"`  // free text mm:ss
	VideoURL  string `json:"videoUrl"`
	Thumbnail string `json:"thumbnail"`
	Views     int    `json:"views"`
}

// NewVideo contains information needed to publish a podcast Video. The video
// file (required) and thumbnail (optional) travel separately as core.Files.
type NewVideo struct {
	Judul     string `json:"judul" validate:"required"`
	Deskripsi string `json:"deskripsi"`
	Pembicara string `json:"pembicara" validate:"required"`
	Tanggal   string `json:"tanggal"`
	Durasi    string `json:"durasi"`
}

// Validate cleans and checks the metadata. An empty title is pre-filled from
// the video file's name; a caller-provided title is never overwritten.
func (nv *NewVideo) Validate(validate *validator.Validate, f core.File) error {
	nv.Judul = core.CleanString(nv.Judul)
	if nv.Judul == "" && f.Name != "" {
		nv.Judul = core.TitleFromFilename(f.Name)
	}
	nv.Deskripsi = core.CleanString(nv.Deskripsi)
	nv.Pembicara = core.CleanString(nv.Pembicara)
	nv.Tanggal = core.CleanString(nv.Tanggal)
	nv.Durasi = core.CleanString(nv.Durasi)
	return validate.Struct(nv)
}
