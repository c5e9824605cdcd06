package inmemdb

import (
	"context"

	"github.com/trezcool/tutordesk/core/qualification"
)

type qualificationRepository struct {
	db *qualificationTable
}

var _ qualification.Repository = (*qualificationRepository)(nil)

func NewQualificationRepository(db *DB) qualification.Repository {
	return &qualificationRepository{db: db.qualification}
}

func (repo *qualificationRepository) QueryQualifications(_ context.Context, teacherID string) ([]qualification.Qualification, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	quals := repo.db.table[teacherID]
	return append(make([]qualification.Qualification, 0, len(quals)), quals...), nil
}

func (repo *qualificationRepository) CreateQualification(_ context.Context, q qualification.Qualification) (qualification.Qualification, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[q.TeacherID] = append(repo.db.table[q.TeacherID], q)
	return q, nil
}

func (repo *qualificationRepository) UpdateQualification(_ context.Context, q qualification.Qualification) (qualification.Qualification, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	quals := repo.db.table[q.TeacherID]
	for i := range quals {
		if quals[i].ID == q.ID {
			updated := append(make([]qualification.Qualification, 0, len(quals)), quals...)
			updated[i] = q
			repo.db.table[q.TeacherID] = updated
			return q, nil
		}
	}
	return qualification.Qualification{}, qualification.ErrNotFound
}

func (repo *qualificationRepository) DeleteQualification(_ context.Context, teacherID, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	quals := repo.db.table[teacherID]
	kept := make([]qualification.Qualification, 0, len(quals))
	for _, q := range quals {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(quals) {
		return qualification.ErrNotFound
	}
	repo.db.table[teacherID] = kept
	return nil
}
