package qualification

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutordesk/core"
)

var categoryTag = "qualcategory"

// InitValidators registers the qualification validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterEnum(validate, translator, categoryTag, Categories...)
}
