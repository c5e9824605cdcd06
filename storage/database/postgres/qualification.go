package pgrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/tutordesk/core/qualification"
)

const qualificationColumns = `id, teacher_id, name, rate, category, is_active, description`

type qualificationRepository struct {
	db *sqlx.DB
}

var _ qualification.Repository = (*qualificationRepository)(nil)

func NewQualificationRepository(db *sqlx.DB) qualification.Repository {
	return &qualificationRepository{db: db}
}

func (repo *qualificationRepository) QueryQualifications(ctx context.Context, teacherID string) ([]qualification.Qualification, error) {
	quals := make([]qualification.Qualification, 0)
	q := `SELECT ` + qualificationColumns + ` FROM qualifications WHERE teacher_id = $1 ORDER BY seq`
	if err := repo.db.SelectContext(ctx, &quals, q, teacherID); err != nil {
		return nil, wrapErr(err, "selecting qualifications")
	}
	return quals, nil
}

func (repo *qualificationRepository) CreateQualification(ctx context.Context, ql qualification.Qualification) (qualification.Qualification, error) {
	q := `INSERT INTO qualifications (` + qualificationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := repo.db.ExecContext(ctx, q, ql.ID, ql.TeacherID, ql.Name, ql.Rate, ql.Category, ql.IsActive, ql.Description)
	if err != nil {
		return qualification.Qualification{}, wrapErr(err, "inserting qualification")
	}
	return ql, nil
}

func (repo *qualificationRepository) UpdateQualification(ctx context.Context, ql qualification.Qualification) (qualification.Qualification, error) {
	q := `UPDATE qualifications SET name = $3, rate = $4, category = $5, is_active = $6, description = $7
	WHERE id = $1 AND teacher_id = $2`
	res, err := repo.db.ExecContext(ctx, q, ql.ID, ql.TeacherID, ql.Name, ql.Rate, ql.Category, ql.IsActive, ql.Description)
	if err != nil {
		return qualification.Qualification{}, wrapErr(err, "updating qualification")
	}
	if err = expectAffected(res, qualification.ErrNotFound); err != nil {
		return qualification.Qualification{}, err
	}
	return ql, nil
}

func (repo *qualificationRepository) DeleteQualification(ctx context.Context, teacherID, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM qualifications WHERE id = $1 AND teacher_id = $2`, id, teacherID)
	if err != nil {
		return wrapErr(err, "deleting qualification")
	}
	return expectAffected(res, qualification.ErrNotFound)
}
