package pgrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/teacher"
)

const teacherColumns = `id, name, email, work_email, phone,
	street AS "address.street", city AS "address.city", country AS "address.country", postal_code AS "address.postal_code",
	avatar, status, to_char(join_date, 'YYYY-MM-DD') AS join_date, total_earnings, rating, completed_lessons`

// orderable teacher columns
var teacherOrderings = map[string]string{
	"name":              "lower(name)",
	"email":             "email",
	"status":            "status",
	"join_date":         "join_date",
	"rating":            "rating",
	"total_earnings":    "total_earnings",
	"completed_lessons": "completed_lessons",
}

type teacherRepository struct {
	db *sqlx.DB
}

var _ teacher.Repository = (*teacherRepository)(nil)

func NewTeacherRepository(db *sqlx.DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) CreateTeacher(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	q := `INSERT INTO teachers (
		id, name, email, work_email, phone, street, city, country, postal_code,
		avatar, status, join_date, total_earnings, rating, completed_lessons
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := repo.db.ExecContext(ctx, q,
		t.ID, t.Name, t.Email, t.WorkEmail, t.Phone,
		t.Address.Street, t.Address.City, t.Address.Country, t.Address.PostalCode,
		t.Avatar, t.Status, t.JoinDate, t.TotalEarnings, t.Rating, t.CompletedLessons,
	)
	if err != nil {
		return teacher.Teacher{}, wrapErr(err, "inserting teacher")
	}
	return t, nil
}

func (repo *teacherRepository) GetTeacherByID(ctx context.Context, id string) (teacher.Teacher, error) {
	var t teacher.Teacher
	err := repo.db.GetContext(ctx, &t, `SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id)
	if err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return teacher.Teacher{}, teacher.ErrNotFound
		}
		return teacher.Teacher{}, wrapErr(err, "selecting teacher")
	}
	return t, nil
}

func (repo *teacherRepository) QueryTeachers(
	ctx context.Context,
	filter teacher.QueryFilter,
	orderings []core.DBOrdering,
) ([]teacher.Teacher, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR work_email ILIKE $%d)", n, n, n))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	q := `SELECT ` + teacherColumns + ` FROM teachers`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY ` + orderBy(orderings, teacherOrderings, "id ASC")

	teachers := make([]teacher.Teacher, 0)
	if err := repo.db.SelectContext(ctx, &teachers, q, args...); err != nil {
		return nil, wrapErr(err, "selecting teachers")
	}
	return teachers, nil
}

func (repo *teacherRepository) UpdateTeacher(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	q := `UPDATE teachers SET
		name = $2, email = $3, work_email = $4, phone = $5,
		street = $6, city = $7, country = $8, postal_code = $9,
		avatar = $10, status = $11, join_date = $12,
		total_earnings = $13, rating = $14, completed_lessons = $15
	WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, q,
		t.ID, t.Name, t.Email, t.WorkEmail, t.Phone,
		t.Address.Street, t.Address.City, t.Address.Country, t.Address.PostalCode,
		t.Avatar, t.Status, t.JoinDate, t.TotalEarnings, t.Rating, t.CompletedLessons,
	)
	if err != nil {
		return teacher.Teacher{}, wrapErr(err, "updating teacher")
	}
	if err = expectAffected(res, teacher.ErrNotFound); err != nil {
		return teacher.Teacher{}, err
	}
	return t, nil
}

// orderBy builds an ORDER BY clause from the known `columns`; `tieBreaker` is always appended.
func orderBy(orderings []core.DBOrdering, columns map[string]string, tieBreaker string) string {
	clauses := make([]string, 0, len(orderings)+1)
	for _, ord := range orderings {
		col, ok := columns[ord.Field]
		if !ok {
			continue
		}
		clauses = append(clauses, core.DBOrdering{Field: col, Ascending: ord.Ascending}.String())
	}
	return strings.Join(append(clauses, tieBreaker), ", ")
}

// expectAffected returns `notFound` when no row was affected.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(err, "counting affected rows")
	}
	if n == 0 {
		return notFound
	}
	return nil
}
