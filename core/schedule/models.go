package schedule

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/tutordesk/core"
)

type SlotType string

const (
	TypeLesson    SlotType = "lesson"
	TypeBreak     SlotType = "break"
	TypeAvailable SlotType = "available"
)

var (
	SlotTypes = []string{string(TypeLesson), string(TypeBreak), string(TypeAvailable)}
	Days      = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	Times     = hourlyTimes()
)

func hourlyTimes() []string {
	times := make([]string, 24)
	for i := range times {
		times[i] = fmt.Sprintf("%02d:00", i)
	}
	return times
}

// Slot is one entry of a teacher's weekly schedule.
// Overlapping slots are allowed.
type Slot struct {
	ID          string      `json:"id" db:"id"`
	TeacherID   string      `json:"teacher_id" db:"teacher_id"`
	Day         string      `json:"day" db:"day"`
	StartTime   string      `json:"start_time" db:"start_time"` // HH:MM
	EndTime     string      `json:"end_time" db:"end_time"`     // HH:MM
	IsAvailable bool        `json:"is_available" db:"is_available"`
	Type        SlotType    `json:"type" db:"type"`
	StudentName null.String `json:"student_name" db:"student_name"`
	Subject     null.String `json:"subject" db:"subject"`
}

// Lookup returns the first slot starting on `day` at `time`.
func Lookup(slots []Slot, day, time string) (Slot, bool) {
	for _, s := range slots {
		if s.Day == day && s.StartTime == time {
			return s, true
		}
	}
	return Slot{}, false
}

// CountByType counts the slots of type `typ`.
func CountByType(slots []Slot, typ SlotType) int {
	var n int
	for _, s := range slots {
		if s.Type == typ {
			n++
		}
	}
	return n
}

// SlotInput holds the full content of a new or replaced Slot.
type SlotInput struct {
	Day         string   `json:"day" validate:"required,weekday"`
	StartTime   string   `json:"start_time" validate:"required,hhmm"`
	EndTime     string   `json:"end_time" validate:"required,hhmm"`
	IsAvailable *bool    `json:"is_available"`
	Type        SlotType `json:"type" validate:"required,slottype"`
	StudentName string   `json:"student_name"`
	Subject     string   `json:"subject"`
}

func (si *SlotInput) Validate(validate *validator.Validate) error {
	si.Day = core.CleanString(si.Day)
	si.StartTime = core.CleanString(si.StartTime)
	si.EndTime = core.CleanString(si.EndTime)
	si.Type = SlotType(core.CleanString(string(si.Type), true /* lower */))
	si.StudentName = core.CleanString(si.StudentName)
	si.Subject = core.CleanString(si.Subject)
	return validate.Struct(si)
}

// slot builds the Slot described by the input; IsAvailable defaults to Type == available.
func (si SlotInput) slot(teacherID, id string) Slot {
	s := Slot{
		ID:          id,
		TeacherID:   teacherID,
		Day:         si.Day,
		StartTime:   si.StartTime,
		EndTime:     si.EndTime,
		IsAvailable: si.Type == TypeAvailable,
		Type:        si.Type,
		StudentName: null.NewString(si.StudentName, si.StudentName != ""),
		Subject:     null.NewString(si.Subject, si.Subject != ""),
	}
	if si.IsAvailable != nil {
		s.IsAvailable = *si.IsAvailable
	}
	return s
}
