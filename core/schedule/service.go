package schedule

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
)

// ErrNotFound is returned when no Slot matches.
var ErrNotFound = errors.New("schedule slot not found")

type (
	Repository interface {
		// QuerySlots returns the slots of a teacher in insertion order.
		QuerySlots(ctx context.Context, teacherID string) ([]Slot, error)
		CreateSlot(ctx context.Context, s Slot) (Slot, error)
		// UpdateSlot replaces the stored Slot with the same ID & TeacherID.
		UpdateSlot(ctx context.Context, s Slot) (Slot, error)
		DeleteSlot(ctx context.Context, teacherID, id string) error
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) List(ctx context.Context, teacherID string) ([]Slot, error) {
	return svc.repo.QuerySlots(ctx, teacherID)
}

func (svc *Service) Grid(ctx context.Context, teacherID string) (Grid, error) {
	slots, err := svc.repo.QuerySlots(ctx, teacherID)
	if err != nil {
		return Grid{}, err
	}
	return BuildGrid(slots), nil
}

// Lookup finds the slot starting on `day` at `time`.
func (svc *Service) Lookup(ctx context.Context, teacherID, day, time string) (Slot, error) {
	slots, err := svc.repo.QuerySlots(ctx, teacherID)
	if err != nil {
		return Slot{}, err
	}
	s, ok := Lookup(slots, day, time)
	if !ok {
		return Slot{}, ErrNotFound
	}
	return s, nil
}

// Add appends a new Slot to the teacher's schedule. `si` must be validated.
func (svc *Service) Add(ctx context.Context, teacherID string, si SlotInput) (Slot, error) {
	s, err := svc.repo.CreateSlot(ctx, si.slot(teacherID, uuid.New().String()))
	if err != nil {
		return Slot{}, errors.Wrap(err, "creating slot")
	}
	svc.logger.Info("schedule slot added", map[string]interface{}{"teacher_id": teacherID, "slot_id": s.ID})
	return s, nil
}

// Replace replaces Slot `id` wholesale. `si` must be validated.
func (svc *Service) Replace(ctx context.Context, teacherID, id string, si SlotInput) (Slot, error) {
	return svc.repo.UpdateSlot(ctx, si.slot(teacherID, id))
}

func (svc *Service) Remove(ctx context.Context, teacherID, id string) error {
	if err := svc.repo.DeleteSlot(ctx, teacherID, id); err != nil {
		return err
	}
	svc.logger.Info("schedule slot removed", map[string]interface{}{"teacher_id": teacherID, "slot_id": id})
	return nil
}
