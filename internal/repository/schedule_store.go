package repository

import (
	"context"

	"github.com/noah-isme/tutor-classes-api/internal/models"
)

// ScheduleStore owns the tutors, classes and class_schedules record sets.
//
// FindMatchingTutors returns each (tutor, class) pair at most once, ordered
// by tutor name then class id. CreateTutorWithClass is all-or-nothing across
// the three record sets and fills in the generated ids.
type ScheduleStore interface {
	FindMatchingTutors(ctx context.Context, subject string, weekDay, minute int) ([]models.TutorWithClass, error)
	CreateTutorWithClass(ctx context.Context, tutor *models.Tutor, class *models.Class, slots []models.ScheduleSlot) (string, error)
	ListSubjects(ctx context.Context) ([]string, error)
	CountClasses(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

var (
	_ ScheduleStore = (*ScheduleRepository)(nil)
	_ ScheduleStore = (*MemoryScheduleStore)(nil)
)
