package payment

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutordesk/core"
)

var (
	statusTag = "txstatus"
	methodTag = "txmethod"
)

// InitValidators registers the payment validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterEnum(validate, translator, statusTag, Statuses...)
	core.RegisterEnum(validate, translator, methodTag, Methods...)
}
