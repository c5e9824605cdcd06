package inmemdb

import (
	"sync"

	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/qualification"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
)

type (
	teacherTable struct {
		mutex sync.RWMutex
		table map[string]teacher.Teacher
	}

	qualificationTable struct {
		mutex sync.RWMutex
		table map[string][]qualification.Qualification // {teacherID: [...]}, insertion order
	}

	slotTable struct {
		mutex sync.RWMutex
		table map[string][]schedule.Slot // {teacherID: [...]}, insertion order
	}

	transactionTable struct {
		mutex sync.RWMutex
		table map[string][]payment.Transaction // {teacherID: [...]}, insertion order
	}

	// DB keeps every record in memory; stored values are never shared with callers.
	DB struct {
		teacher       *teacherTable
		qualification *qualificationTable
		slot          *slotTable
		transaction   *transactionTable
	}
)

func NewDB() *DB {
	return &DB{
		teacher:       &teacherTable{table: make(map[string]teacher.Teacher)},
		qualification: &qualificationTable{table: make(map[string][]qualification.Qualification)},
		slot:          &slotTable{table: make(map[string][]schedule.Slot)},
		transaction:   &transactionTable{table: make(map[string][]payment.Transaction)},
	}
}
