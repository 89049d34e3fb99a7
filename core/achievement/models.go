package achievement

import (
	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

type Achievement struct {
	ID        int64  `json:"id"`
	Judul     string `json:"judul"`
	Tahun     int    `json:"tahun"`
	Deskripsi string `json:"deskripsi"`
}

// NewAchievement contains information needed to record a new Achievement.
type NewAchievement struct {
	Judul     string `json:"judul" validate:"required"`
	Tahun     int    `json:"tahun" validate:"required,gte=2020,lte=2030"`
	Deskripsi string `json:"deskripsi" validate:"required"`
}

func (na *NewAchievement) Validate(validate *validator.Validate) error {
	na.Judul = core.CleanString(na.Judul)
	na.Deskripsi = core.CleanString(na.Deskripsi)
	return validate.Struct(na)
}
