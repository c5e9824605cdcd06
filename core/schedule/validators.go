package schedule

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutordesk/core"
)

var (
	weekdayTag  = "weekday"
	slotTypeTag = "slottype"
	slotEndTag  = "slotend"
	slotEndText = "end time must be after start time"
	lessonTag   = "lessonstudent"
	lessonText  = "a lesson requires a student"
)

// InitValidators registers the schedule validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterEnum(validate, translator, weekdayTag, Days...)
	core.RegisterEnum(validate, translator, slotTypeTag, SlotTypes...)

	validate.RegisterStructValidation(slotStructValidation, SlotInput{})
	core.RegisterCustomTranslation(validate, translator, slotEndTag, slotEndText)
	core.RegisterCustomTranslation(validate, translator, lessonTag, lessonText)
}

func slotStructValidation(sl validator.StructLevel) {
	si := sl.Current().Interface().(SlotInput)

	// "HH:MM" strings compare chronologically
	if core.IsTime(si.StartTime) && core.IsTime(si.EndTime) && si.EndTime <= si.StartTime {
		sl.ReportError(si.EndTime, "end_time", "EndTime", slotEndTag, "")
	}
	if si.Type == TypeLesson && si.StudentName == "" {
		sl.ReportError(si.StudentName, "student_name", "StudentName", lessonTag, "")
	}
}
