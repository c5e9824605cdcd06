package qualification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/tutordesk/core"
)

// ErrNotFound is returned when no Qualification matches.
var ErrNotFound = errors.New("qualification not found")

const minRate = 0.01

type (
	Repository interface {
		// QueryQualifications returns the qualifications of a teacher in insertion order.
		QueryQualifications(ctx context.Context, teacherID string) ([]Qualification, error)
		CreateQualification(ctx context.Context, q Qualification) (Qualification, error)
		// UpdateQualification replaces the stored Qualification with the same ID & TeacherID.
		UpdateQualification(ctx context.Context, q Qualification) (Qualification, error)
		DeleteQualification(ctx context.Context, teacherID, id string) error
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) List(ctx context.Context, teacherID string) ([]Qualification, error) {
	return svc.repo.QueryQualifications(ctx, teacherID)
}

func (svc *Service) ListPartitioned(ctx context.Context, teacherID string) (Partitioned, error) {
	quals, err := svc.repo.QueryQualifications(ctx, teacherID)
	if err != nil {
		return Partitioned{}, err
	}
	return Partition(quals), nil
}

func (svc *Service) ByCategory(ctx context.Context, teacherID string, cat Category) ([]Qualification, error) {
	quals, err := svc.repo.QueryQualifications(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(quals, cat), nil
}

// Add appends a new Qualification to the teacher's list. `nq` must be validated.
func (svc *Service) Add(ctx context.Context, teacherID string, nq NewQualification) (Qualification, error) {
	rate, err := roundRate(nq.Rate)
	if err != nil {
		return Qualification{}, err
	}
	q := Qualification{
		ID:          uuid.New().String(),
		TeacherID:   teacherID,
		Name:        nq.Name,
		Rate:        rate,
		Category:    nq.Category,
		IsActive:    true,
		Description: null.NewString(nq.Description, nq.Description != ""),
	}
	if q.Category == "" {
		q.Category = CategoryPrivate
	}
	if nq.IsActive != nil {
		q.IsActive = *nq.IsActive
	}
	q, err = svc.repo.CreateQualification(ctx, q)
	if err != nil {
		return Qualification{}, errors.Wrap(err, "creating qualification")
	}
	svc.logger.Info("qualification added", map[string]interface{}{"teacher_id": teacherID, "qualification_id": q.ID})
	return q, nil
}

// Replace replaces Qualification `id` wholesale. `uq` must be validated.
func (svc *Service) Replace(ctx context.Context, teacherID, id string, uq UpdateQualification) (Qualification, error) {
	rate, err := roundRate(uq.Rate)
	if err != nil {
		return Qualification{}, err
	}
	return svc.repo.UpdateQualification(ctx, Qualification{
		ID:          id,
		TeacherID:   teacherID,
		Name:        uq.Name,
		Rate:        rate,
		Category:    uq.Category,
		IsActive:    uq.IsActive,
		Description: null.NewString(uq.Description, uq.Description != ""),
	})
}

func (svc *Service) Remove(ctx context.Context, teacherID, id string) error {
	if err := svc.repo.DeleteQualification(ctx, teacherID, id); err != nil {
		return err
	}
	svc.logger.Info("qualification removed", map[string]interface{}{"teacher_id": teacherID, "qualification_id": id})
	return nil
}

// roundRate rounds `rate` to cents, as stored by the database.
func roundRate(rate float64) (float64, error) {
	rate = core.Round(rate, 2)
	if rate < minRate {
		return 0, core.NewValidationError(nil, core.FieldError{Field: "rate", Error: fmt.Sprintf("must be at least %.2f", minRate)})
	}
	return rate, nil
}
