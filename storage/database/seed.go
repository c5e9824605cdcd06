package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/qualification"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
)

// Dataset is a set of records loaded as a whole.
type Dataset struct {
	Teachers       []teacher.Teacher
	Qualifications []qualification.Qualification
	Slots          []schedule.Slot
	Transactions   []payment.Transaction
}

// Seed loads the demo dataset.
func Seed(ctx context.Context, repos Repositories) error {
	return Load(ctx, repos, DemoDataset())
}

// Load creates every record of `ds`, teachers first.
func Load(ctx context.Context, repos Repositories, ds Dataset) error {
	for _, t := range ds.Teachers {
		if _, err := repos.Teachers.CreateTeacher(ctx, t); err != nil {
			return errors.Wrapf(err, "creating teacher %s", t.ID)
		}
	}
	for _, q := range ds.Qualifications {
		if _, err := repos.Qualifications.CreateQualification(ctx, q); err != nil {
			return errors.Wrapf(err, "creating qualification %s", q.ID)
		}
	}
	for _, s := range ds.Slots {
		if _, err := repos.Schedules.CreateSlot(ctx, s); err != nil {
			return errors.Wrapf(err, "creating slot %s", s.ID)
		}
	}
	for _, tx := range ds.Transactions {
		if _, err := repos.Payments.CreateTransaction(ctx, tx); err != nil {
			return errors.Wrapf(err, "creating transaction %s", tx.ID)
		}
	}
	return nil
}

// DemoDataset returns the records the dashboard starts with.
func DemoDataset() Dataset {
	return Dataset{
		Teachers: []teacher.Teacher{
			{
				ID:        "1",
				Name:      "Alynia Allan",
				Email:     "alynia@example.com",
				WorkEmail: null.StringFrom("alynia.allan@example.com"),
				Phone:     "(416) 555-0123",
				Address: teacher.Address{
					Street:     "123 University Avenue",
					City:       "Toronto",
					Country:    "Canada",
					PostalCode: "M5J 2K3",
				},
				Status:           teacher.StatusActive,
				JoinDate:         "2023-01-15",
				TotalEarnings:    18750,
				Rating:           4.8,
				CompletedLessons: 156,
			},
			{
				ID:    "2",
				Name:  "Marcus Bell",
				Email: "marcus@example.com",
				Phone: "(416) 555-0188",
				Address: teacher.Address{
					Street:     "48 Queen Street West",
					City:       "Toronto",
					Country:    "Canada",
					PostalCode: "M5H 2M9",
				},
				Status:           teacher.StatusPending,
				JoinDate:         "2024-01-03",
				TotalEarnings:    0,
				Rating:           0,
				CompletedLessons: 0,
			},
			{
				ID:        "3",
				Name:      "Sofia Ramirez",
				Email:     "sofia@example.com",
				WorkEmail: null.StringFrom("sofia.ramirez@example.com"),
				Phone:     "(604) 555-0142",
				Address: teacher.Address{
					Street:     "900 Burrard Street",
					City:       "Vancouver",
					Country:    "Canada",
					PostalCode: "V6Z 1X9",
				},
				Status:           teacher.StatusActive,
				JoinDate:         "2023-06-01",
				TotalEarnings:    9420,
				Rating:           4.6,
				CompletedLessons: 87,
			},
		},
		Qualifications: []qualification.Qualification{
			{ID: "q-1", TeacherID: "1", Name: "Vocal Contemporary", Rate: 35, Category: qualification.CategoryPrivate, IsActive: true},
			{ID: "q-2", TeacherID: "1", Name: "Vocal Jazz", Rate: 40, Category: qualification.CategoryPrivate, IsActive: true},
			{ID: "q-3", TeacherID: "1", Name: "Vocal Classical", Rate: 45, Category: qualification.CategoryPrivate, IsActive: true},
			{ID: "q-4", TeacherID: "1", Name: "Vocal Pop", Rate: 30, Category: qualification.CategoryPrivate, IsActive: true},
			{ID: "q-5", TeacherID: "1", Name: "Vocal Rock", Rate: 35, Category: qualification.CategoryPrivate, IsActive: true},
			{
				ID: "q-6", TeacherID: "3", Name: "Piano Ensemble", Rate: 25, Category: qualification.CategoryGroup, IsActive: true,
				Description: null.StringFrom("Groups of up to 6 students"),
			},
		},
		Slots: []schedule.Slot{
			{
				ID: "s-1", TeacherID: "1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", Type: schedule.TypeLesson,
				StudentName: null.StringFrom("John Doe"), Subject: null.StringFrom("Vocal Jazz"),
			},
			{
				ID: "s-2", TeacherID: "1", Day: "Tuesday", StartTime: "14:00", EndTime: "15:00", Type: schedule.TypeLesson,
				StudentName: null.StringFrom("Jane Smith"), Subject: null.StringFrom("Vocal Pop"),
			},
			{ID: "s-3", TeacherID: "1", Day: "Wednesday", StartTime: "10:00", EndTime: "11:00", Type: schedule.TypeAvailable, IsAvailable: true},
			{ID: "s-4", TeacherID: "3", Day: "Friday", StartTime: "16:00", EndTime: "17:00", Type: schedule.TypeAvailable, IsAvailable: true},
		},
		Transactions: []payment.Transaction{
			{
				ID: "t-1", TeacherID: "1", Amount: 350, Date: "2024-01-15", Status: payment.StatusCompleted,
				Description: "Weekly payment - Vocal lessons", Method: payment.MethodBank,
			},
			{
				ID: "t-2", TeacherID: "1", Amount: 280, Date: "2024-01-08", Status: payment.StatusCompleted,
				Description: "Weekly payment - Vocal lessons", Method: payment.MethodBank,
			},
			{
				ID: "t-3", TeacherID: "1", Amount: 420, Date: "2024-01-22", Status: payment.StatusPending,
				Description: "Payment request - Extra lessons", Method: payment.MethodPaypal,
			},
			{
				ID: "t-4", TeacherID: "3", Amount: 150, Date: "2023-12-18", Status: payment.StatusCompleted,
				Description: "Weekly payment - Piano lessons", Method: payment.MethodBank,
			},
			{
				ID: "t-5", TeacherID: "3", Amount: 75, Date: "2024-01-12", Status: payment.StatusFailed,
				Description: "Weekly payment - Piano lessons", Method: payment.MethodCard,
			},
		},
	}
}
