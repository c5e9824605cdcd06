package schedule

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/tutordesk/core"
)

var testSlots = []Slot{
	{ID: "1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", Type: TypeLesson, StudentName: null.StringFrom("John Doe")},
	{ID: "2", Day: "Monday", StartTime: "09:00", EndTime: "09:30", Type: TypeBreak}, // overlaps, never looked up
	{ID: "3", Day: "Sunday", StartTime: "12:00", EndTime: "13:00", Type: TypeBreak},
	{ID: "4", Day: "Friday", StartTime: "23:00", EndTime: "23:59", Type: TypeAvailable, IsAvailable: true},
	{ID: "5", Day: "Friday", StartTime: "16:30", EndTime: "17:30", Type: TypeAvailable, IsAvailable: true}, // off the hour
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		day, time string
		wantID    string
		wantOK    bool
	}{
		{name: "first match wins", day: "Monday", time: "09:00", wantID: "1", wantOK: true},
		{name: "day mismatch", day: "Tuesday", time: "09:00"},
		{name: "time mismatch", day: "Monday", time: "10:00"},
		{name: "case sensitive day", day: "monday", time: "09:00"},
		{name: "off the hour", day: "Friday", time: "16:30", wantID: "5", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Lookup(testSlots, tt.day, tt.time)
			if ok != tt.wantOK || s.ID != tt.wantID {
				t.Errorf("Lookup() = %v, %v; want %v, %v", s.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestBuildGrid(t *testing.T) {
	g := BuildGrid(testSlots)

	require.Len(t, g.Rows, 24)
	assert.Equal(t, "00:00", g.Rows[0].Time)
	assert.Equal(t, "23:00", g.Rows[23].Time)
	for _, row := range g.Rows {
		require.Len(t, row.Cells, 7)
		assert.Equal(t, "Monday", row.Cells[0].Day)
		assert.Equal(t, "Sunday", row.Cells[6].Day)
	}

	var lessons, breaks, available, empty int
	for _, row := range g.Rows {
		for _, c := range row.Cells {
			switch c.Kind {
			case KindLesson:
				lessons++
			case KindBreak:
				breaks++
			case KindAvailable:
				available++
			case KindEmpty:
				empty++
				assert.Nil(t, c.Slot)
			}
		}
	}
	assert.Equal(t, []int{1, 1, 1, 7*24 - 3}, []int{lessons, breaks, available, empty})

	mon9, ok := g.Cell("Monday", "09:00")
	require.True(t, ok)
	assert.Equal(t, "John Doe", mon9.Label)
	assert.Equal(t, "1", mon9.Slot.ID)

	fri23, _ := g.Cell("Friday", "23:00")
	assert.Equal(t, KindAvailable, fri23.Kind)
	assert.Empty(t, fri23.Label)

	_, ok = g.Cell("Funday", "09:00")
	assert.False(t, ok)
}

func TestCountByType(t *testing.T) {
	assert.Equal(t, 1, CountByType(testSlots, TypeLesson))
	assert.Equal(t, 2, CountByType(testSlots, TypeAvailable))
	assert.Equal(t, 0, CountByType(nil, TypeBreak))
}

func newValidator() *validator.Validate {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func TestSlotInput_Validate(t *testing.T) {
	validate := newValidator()
	bPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name       string
		si         SlotInput
		wantFields []string
	}{
		{name: "valid lesson", si: SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "10:00", Type: "Lesson", StudentName: " Ann "}},
		{name: "valid break", si: SlotInput{Day: "Sunday", StartTime: "12:00", EndTime: "12:30", Type: TypeBreak}},
		{name: "bad day", si: SlotInput{Day: "Someday", StartTime: "09:00", EndTime: "10:00", Type: TypeBreak}, wantFields: []string{"day"}},
		{name: "bad times", si: SlotInput{Day: "Monday", StartTime: "9:00", EndTime: "24:00", Type: TypeBreak}, wantFields: []string{"start_time", "end_time"}},
		{name: "end equals start", si: SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "09:00", Type: TypeBreak}, wantFields: []string{"end_time"}},
		{name: "bad type", si: SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "10:00", Type: "nap"}, wantFields: []string{"type"}},
		{name: "lesson without student", si: SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "10:00", Type: TypeLesson, IsAvailable: bPtr(true)}, wantFields: []string{"student_name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.si.Validate(validate)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var vErrs validator.ValidationErrors
			require.IsType(t, vErrs, err)
			vErrs = err.(validator.ValidationErrors)
			fields := make([]string, 0, len(vErrs))
			for _, fe := range vErrs {
				fields = append(fields, fe.Field())
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestSlotInput_slot(t *testing.T) {
	bPtr := func(b bool) *bool { return &b }

	s := SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "10:00", Type: TypeAvailable}.slot("t", "id")
	assert.True(t, s.IsAvailable, "derived from the type")
	assert.False(t, s.StudentName.Valid)

	s = SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "10:00", Type: TypeAvailable, IsAvailable: bPtr(false)}.slot("t", "id")
	assert.False(t, s.IsAvailable, "explicit value wins")

	s = SlotInput{Day: "Monday", StartTime: "09:00", EndTime: "10:00", Type: TypeLesson, StudentName: "Ann"}.slot("t", "id")
	assert.False(t, s.IsAvailable)
	assert.Equal(t, null.StringFrom("Ann"), s.StudentName)
	assert.Equal(t, "t", s.TeacherID)
	assert.Equal(t, "id", s.ID)
}
