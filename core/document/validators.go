package document

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

// Category values contain slashes and spaces, which `oneof` cannot express,
// hence the custom tag.
var (
	kategoriTag  = "dokkategori"
	kategoriText = "invalid document category"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(kategoriTag, kategoriValidation)
	core.RegisterCustomTranslation(validate, translator, kategoriTag, kategoriText)
}

func kategoriValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, cat := range AllCategories {
		if val == cat {
			return true
		}
	}
	return false
}
