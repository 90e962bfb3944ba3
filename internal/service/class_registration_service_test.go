package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-classes-api/internal/dto"
	"github.com/noah-isme/tutor-classes-api/internal/models"
	"github.com/noah-isme/tutor-classes-api/internal/repository"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
)

type failingRegistrationStore struct {
	calls int
}

func (f *failingRegistrationStore) CreateTutorWithClass(ctx context.Context, tutor *models.Tutor, class *models.Class, slots []models.ScheduleSlot) (string, error) {
	f.calls++
	return "", errors.New(`insert class: pq: duplicate key value violates unique constraint "classes_pkey"`)
}

func intPtr(v int) *dto.Integer {
	i := dto.Integer(v)
	return &i
}

func costPtr(v float64) *dto.Number {
	n := dto.Number(v)
	return &n
}

func anaRequest(schedule ...dto.ScheduleItem) dto.RegisterClassRequest {
	return dto.RegisterClassRequest{
		Name:     "Ana",
		Avatar:   "https://example.com/ana.png",
		Whatsapp: "5511999999999",
		Bio:      "Math tutor",
		Subject:  "Math",
		Cost:     costPtr(50),
		Schedule: schedule,
	}
}

func monday8to10() dto.ScheduleItem {
	return dto.ScheduleItem{WeekDay: intPtr(1), From: "08:00", To: "10:00"}
}

func TestClassRegistrationServiceEmptySchedule(t *testing.T) {
	store := repository.NewMemoryScheduleStore()
	svc := NewClassRegistrationService(store, nil, nil, nil, nil)

	_, err := svc.Register(context.Background(), anaRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrEmptySchedule))

	tutors, classes, slots := store.Counts()
	assert.Zero(t, tutors+classes+slots)
}

func TestClassRegistrationServiceInvalidTime(t *testing.T) {
	store := &failingRegistrationStore{}
	svc := NewClassRegistrationService(store, nil, nil, nil, nil)

	_, err := svc.Register(context.Background(), anaRequest(monday8to10(), dto.ScheduleItem{WeekDay: intPtr(2), From: "24:00", To: "25:00"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidTimeFormat))
	assert.Contains(t, appErrors.FromError(err).Message, "schedule[1].from")
	assert.Zero(t, store.calls)
}

func TestClassRegistrationServiceValidation(t *testing.T) {
	store := &failingRegistrationStore{}
	svc := NewClassRegistrationService(store, nil, nil, nil, nil)

	req := anaRequest(dto.ScheduleItem{WeekDay: intPtr(7), From: "08:00", To: "10:00"})
	_, err := svc.Register(context.Background(), req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	req = anaRequest(monday8to10())
	req.Name = ""
	_, err = svc.Register(context.Background(), req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, appErrors.FromError(err).Message, "Name")

	req = anaRequest(monday8to10())
	req.Cost = costPtr(-1)
	_, err = svc.Register(context.Background(), req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	req = anaRequest(dto.ScheduleItem{From: "08:00", To: "10:00"})
	_, err = svc.Register(context.Background(), req)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	assert.Zero(t, store.calls)
}

func TestClassRegistrationServiceStoreFailureIsGeneric(t *testing.T) {
	store := &failingRegistrationStore{}
	metrics := NewMetricsService()
	svc := NewClassRegistrationService(store, nil, nil, metrics, nil)

	_, err := svc.Register(context.Background(), anaRequest(monday8to10()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrRegistrationFailed))
	assert.Equal(t, "Unexpected error while creating new class", appErrors.FromError(err).Message)
	assert.Equal(t, 1, store.calls)
}

func TestClassRegistrationServiceSlotFailureRollsBackEverything(t *testing.T) {
	store := repository.NewMemoryScheduleStore()
	svc := NewClassRegistrationService(store, nil, nil, nil, nil)

	// to before from violates the schedule window constraint at insert time.
	bad := dto.ScheduleItem{WeekDay: intPtr(1), From: "10:00", To: "08:00"}
	_, err := svc.Register(context.Background(), anaRequest(monday8to10(), bad))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrRegistrationFailed))

	tutors, classes, slots := store.Counts()
	assert.Zero(t, tutors)
	assert.Zero(t, classes)
	assert.Zero(t, slots)
}

func TestRegisterThenSearch(t *testing.T) {
	store := repository.NewMemoryScheduleStore()
	cache := NewCacheService(newFakeCacheRepo(), nil, time.Minute, nil, true)
	register := NewClassRegistrationService(store, cache, nil, nil, nil)
	search := NewClassSearchService(store, cache, nil, nil)
	filter := models.SearchFilter{Subject: "Math", WeekDay: "1", Time: "09:00"}

	items, err := search.Search(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, items)

	classID, err := register.Register(context.Background(), anaRequest(monday8to10()))
	require.NoError(t, err)
	assert.NotEmpty(t, classID)

	items, err = search.Search(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, classID, items[0].ClassID)
	assert.Equal(t, "Ana", items[0].Name)
	assert.Equal(t, "Math", items[0].Subject)
	assert.Equal(t, 50.0, items[0].Cost)

	filter.Time = "10:00"
	items, err = search.Search(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, items)
}
