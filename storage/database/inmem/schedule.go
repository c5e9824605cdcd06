package inmemdb

import (
	"context"

	"github.com/trezcool/tutordesk/core/schedule"
)

type scheduleRepository struct {
	db *slotTable
}

var _ schedule.Repository = (*scheduleRepository)(nil)

func NewScheduleRepository(db *DB) schedule.Repository {
	return &scheduleRepository{db: db.slot}
}

func (repo *scheduleRepository) QuerySlots(_ context.Context, teacherID string) ([]schedule.Slot, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	slots := repo.db.table[teacherID]
	return append(make([]schedule.Slot, 0, len(slots)), slots...), nil
}

func (repo *scheduleRepository) CreateSlot(_ context.Context, s schedule.Slot) (schedule.Slot, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[s.TeacherID] = append(repo.db.table[s.TeacherID], s)
	return s, nil
}

func (repo *scheduleRepository) UpdateSlot(_ context.Context, s schedule.Slot) (schedule.Slot, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	slots := repo.db.table[s.TeacherID]
	for i := range slots {
		if slots[i].ID == s.ID {
			updated := append(make([]schedule.Slot, 0, len(slots)), slots...)
			updated[i] = s
			repo.db.table[s.TeacherID] = updated
			return s, nil
		}
	}
	return schedule.Slot{}, schedule.ErrNotFound
}

func (repo *scheduleRepository) DeleteSlot(_ context.Context, teacherID, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	slots := repo.db.table[teacherID]
	kept := make([]schedule.Slot, 0, len(slots))
	for _, s := range slots {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(slots) {
		return schedule.ErrNotFound
	}
	repo.db.table[teacherID] = kept
	return nil
}
