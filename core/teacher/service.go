package teacher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
)

// ErrNotFound is returned when no Teacher matches.
var ErrNotFound = errors.New("teacher not found")

type (
	Repository interface {
		CreateTeacher(ctx context.Context, t Teacher) (Teacher, error)
		GetTeacherByID(ctx context.Context, id string) (Teacher, error)
		// QueryTeachers applies AND operation on the set QueryFilter fields.
		QueryTeachers(ctx context.Context, filter QueryFilter, orderings []core.DBOrdering) ([]Teacher, error)
		// UpdateTeacher replaces the stored Teacher with the same ID.
		UpdateTeacher(ctx context.Context, t Teacher) (Teacher, error)
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) GetByID(ctx context.Context, id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(ctx, core.CleanString(id))
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter, orderings []core.DBOrdering) ([]Teacher, error) {
	filter.Clean()
	return svc.repo.QueryTeachers(ctx, filter, CleanOrderings(orderings))
}

// QueryAll returns every Teacher ordered by name.
func (svc *Service) QueryAll(ctx context.Context) ([]Teacher, error) {
	return svc.repo.QueryTeachers(ctx, QueryFilter{}, DefaultOrdering)
}

// Update replaces the profile of Teacher `id`. `ut` must be validated.
func (svc *Service) Update(ctx context.Context, id string, ut UpdateTeacher) (Teacher, error) {
	orig, err := svc.repo.GetTeacherByID(ctx, id)
	if err != nil {
		return Teacher{}, err
	}
	t, err := svc.repo.UpdateTeacher(ctx, ut.Apply(orig))
	if err != nil {
		return Teacher{}, errors.Wrap(err, "updating teacher")
	}
	svc.logger.Info("teacher profile updated", t)
	return t, nil
}
