package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
)

// ScheduleRepository is the PostgreSQL ScheduleStore.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// FindMatchingTutors semi-joins classes against the slots open at minute on weekDay.
func (r *ScheduleRepository) FindMatchingTutors(ctx context.Context, subject string, weekDay, minute int) ([]models.TutorWithClass, error) {
	const query = `SELECT c.id AS class_id, c.subject, c.cost, t.id AS tutor_id, t.name, t.avatar, t.whatsapp, t.bio
FROM classes c
JOIN tutors t ON t.id = c.tutor_id
WHERE c.subject = $1
AND c.id IN (SELECT s.class_id FROM class_schedules s WHERE s.week_day = $2 AND s.from_minute <= $3 AND s.to_minute > $3)
ORDER BY t.name ASC, c.id ASC`

	items := make([]models.TutorWithClass, 0)
	if err := r.db.SelectContext(ctx, &items, query, subject, weekDay, minute); err != nil {
		return nil, fmt.Errorf("find matching tutors: %w", err)
	}
	return items, nil
}

// CreateTutorWithClass inserts the tutor, its class and every slot in one transaction.
func (r *ScheduleRepository) CreateTutorWithClass(ctx context.Context, tutor *models.Tutor, class *models.Class, slots []models.ScheduleSlot) (classID string, err error) {
	if len(slots) == 0 {
		return "", appErrors.ErrEmptySchedule
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin registration transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	tutor.ID = uuid.NewString()
	tutor.CreatedAt = now
	const insertTutor = `INSERT INTO tutors (id, name, avatar, whatsapp, bio, created_at)
		VALUES (:id, :name, :avatar, :whatsapp, :bio, :created_at)`
	if _, err = tx.NamedExecContext(ctx, insertTutor, tutor); err != nil {
		return "", fmt.Errorf("insert tutor: %w", err)
	}

	class.ID = uuid.NewString()
	class.TutorID = tutor.ID
	class.CreatedAt = now
	const insertClass = `INSERT INTO classes (id, subject, cost, tutor_id, created_at)
		VALUES (:id, :subject, :cost, :tutor_id, :created_at)`
	if _, err = tx.NamedExecContext(ctx, insertClass, class); err != nil {
		return "", fmt.Errorf("insert class: %w", err)
	}

	for i := range slots {
		slots[i].ID = uuid.NewString()
		slots[i].ClassID = class.ID
	}
	const insertSlots = `INSERT INTO class_schedules (id, class_id, week_day, from_minute, to_minute)
		VALUES (:id, :class_id, :week_day, :from_minute, :to_minute)`
	if _, err = tx.NamedExecContext(ctx, insertSlots, slots); err != nil {
		return "", fmt.Errorf("insert class schedules: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit registration: %w", err)
	}
	return class.ID, nil
}

// ListSubjects returns the distinct subjects currently offered.
func (r *ScheduleRepository) ListSubjects(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT subject FROM classes ORDER BY subject ASC`
	subjects := make([]string, 0)
	if err := r.db.SelectContext(ctx, &subjects, query); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// CountClasses returns the number of registered classes.
func (r *ScheduleRepository) CountClasses(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM classes`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count classes: %w", err)
	}
	return total, nil
}

// Ping checks database connectivity.
func (r *ScheduleRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
