package pgrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/tutordesk/core/schedule"
)

const slotColumns = `id, teacher_id, day, start_time, end_time, is_available, type, student_name, subject`

type scheduleRepository struct {
	db *sqlx.DB
}

var _ schedule.Repository = (*scheduleRepository)(nil)

func NewScheduleRepository(db *sqlx.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) QuerySlots(ctx context.Context, teacherID string) ([]schedule.Slot, error) {
	slots := make([]schedule.Slot, 0)
	q := `SELECT ` + slotColumns + ` FROM schedule_slots WHERE teacher_id = $1 ORDER BY seq`
	if err := repo.db.SelectContext(ctx, &slots, q, teacherID); err != nil {
		return nil, wrapErr(err, "selecting slots")
	}
	return slots, nil
}

func (repo *scheduleRepository) CreateSlot(ctx context.Context, s schedule.Slot) (schedule.Slot, error) {
	q := `INSERT INTO schedule_slots (` + slotColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := repo.db.ExecContext(ctx, q,
		s.ID, s.TeacherID, s.Day, s.StartTime, s.EndTime, s.IsAvailable, s.Type, s.StudentName, s.Subject,
	)
	if err != nil {
		return schedule.Slot{}, wrapErr(err, "inserting slot")
	}
	return s, nil
}

func (repo *scheduleRepository) UpdateSlot(ctx context.Context, s schedule.Slot) (schedule.Slot, error) {
	q := `UPDATE schedule_slots SET
		day = $3, start_time = $4, end_time = $5, is_available = $6, type = $7, student_name = $8, subject = $9
	WHERE id = $1 AND teacher_id = $2`
	res, err := repo.db.ExecContext(ctx, q,
		s.ID, s.TeacherID, s.Day, s.StartTime, s.EndTime, s.IsAvailable, s.Type, s.StudentName, s.Subject,
	)
	if err != nil {
		return schedule.Slot{}, wrapErr(err, "updating slot")
	}
	if err = expectAffected(res, schedule.ErrNotFound); err != nil {
		return schedule.Slot{}, err
	}
	return s, nil
}

func (repo *scheduleRepository) DeleteSlot(ctx context.Context, teacherID, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM schedule_slots WHERE id = $1 AND teacher_id = $2`, id, teacherID)
	if err != nil {
		return wrapErr(err, "deleting slot")
	}
	return expectAffected(res, schedule.ErrNotFound)
}
