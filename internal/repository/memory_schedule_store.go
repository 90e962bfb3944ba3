package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
)

// MemoryScheduleStore is an in-process ScheduleStore. It enforces the same
// row constraints as the SQL schema and applies a registration only after
// every row has been checked, so a rejected registration leaves no trace.
type MemoryScheduleStore struct {
	mu      sync.RWMutex
	tutors  map[string]models.Tutor
	classes map[string]models.Class
	slots   map[string][]models.ScheduleSlot
	now     func() time.Time
}

// NewMemoryScheduleStore constructs an empty store.
func NewMemoryScheduleStore() *MemoryScheduleStore {
	return &MemoryScheduleStore{
		tutors:  make(map[string]models.Tutor),
		classes: make(map[string]models.Class),
		slots:   make(map[string][]models.ScheduleSlot),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// FindMatchingTutors filters slots grouped by class id.
func (s *MemoryScheduleStore) FindMatchingTutors(ctx context.Context, subject string, weekDay, minute int) ([]models.TutorWithClass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.TutorWithClass, 0)
	for classID, class := range s.classes {
		if class.Subject != subject || !anyCovers(s.slots[classID], weekDay, minute) {
			continue
		}
		tutor, ok := s.tutors[class.TutorID]
		if !ok {
			continue
		}
		items = append(items, models.TutorWithClass{
			ClassID:  class.ID,
			Subject:  class.Subject,
			Cost:     class.Cost,
			TutorID:  tutor.ID,
			Name:     tutor.Name,
			Avatar:   tutor.Avatar,
			Whatsapp: tutor.Whatsapp,
			Bio:      tutor.Bio,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ClassID < items[j].ClassID
	})
	return items, nil
}

func anyCovers(slots []models.ScheduleSlot, weekDay, minute int) bool {
	for _, slot := range slots {
		if slot.Covers(weekDay, minute) {
			return true
		}
	}
	return false
}

// CreateTutorWithClass checks every row, then applies all three writes under one lock.
func (s *MemoryScheduleStore) CreateTutorWithClass(ctx context.Context, tutor *models.Tutor, class *models.Class, slots []models.ScheduleSlot) (string, error) {
	if len(slots) == 0 {
		return "", appErrors.ErrEmptySchedule
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkTutor(tutor); err != nil {
		return "", fmt.Errorf("insert tutor: %w", err)
	}
	if err := checkClass(class); err != nil {
		return "", fmt.Errorf("insert class: %w", err)
	}
	for i, slot := range slots {
		if err := checkSlot(slot); err != nil {
			return "", fmt.Errorf("insert class schedules: row %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	tutor.ID = uuid.NewString()
	tutor.CreatedAt = now
	class.ID = uuid.NewString()
	class.TutorID = tutor.ID
	class.CreatedAt = now

	staged := make([]models.ScheduleSlot, len(slots))
	for i := range slots {
		slots[i].ID = uuid.NewString()
		slots[i].ClassID = class.ID
		staged[i] = slots[i]
	}

	s.tutors[tutor.ID] = *tutor
	s.classes[class.ID] = *class
	s.slots[class.ID] = staged
	return class.ID, nil
}

// ListSubjects returns the distinct subjects in ascending order.
func (s *MemoryScheduleStore) ListSubjects(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.classes))
	subjects := make([]string, 0, len(s.classes))
	for _, class := range s.classes {
		if _, ok := seen[class.Subject]; ok {
			continue
		}
		seen[class.Subject] = struct{}{}
		subjects = append(subjects, class.Subject)
	}
	sort.Strings(subjects)
	return subjects, nil
}

// CountClasses returns the number of stored classes.
func (s *MemoryScheduleStore) CountClasses(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.classes), nil
}

// Ping always succeeds.
func (s *MemoryScheduleStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Counts reports the number of tutors, classes and slots held.
func (s *MemoryScheduleStore) Counts() (tutors, classes, slots int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, list := range s.slots {
		slots += len(list)
	}
	return len(s.tutors), len(s.classes), slots
}

func checkTutor(t *models.Tutor) error {
	if t == nil {
		return fmt.Errorf("tutor is required")
	}
	for column, value := range map[string]string{"name": t.Name, "avatar": t.Avatar, "whatsapp": t.Whatsapp, "bio": t.Bio} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("null value in column %q", column)
		}
	}
	return nil
}

func checkClass(c *models.Class) error {
	if c == nil {
		return fmt.Errorf("class is required")
	}
	if strings.TrimSpace(c.Subject) == "" {
		return fmt.Errorf(`null value in column "subject"`)
	}
	if c.Cost < 0 {
		return fmt.Errorf("cost %.2f violates check constraint", c.Cost)
	}
	return nil
}

func checkSlot(slot models.ScheduleSlot) error {
	if slot.WeekDay < 0 || slot.WeekDay > 6 {
		return fmt.Errorf("week_day %d violates check constraint", slot.WeekDay)
	}
	if !slot.Valid() {
		return fmt.Errorf("window [%d,%d) violates check constraint chk_class_schedules_window", slot.From, slot.To)
	}
	return nil
}
