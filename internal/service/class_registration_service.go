package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-classes-api/internal/dto"
	"github.com/noah-isme/tutor-classes-api/internal/models"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
	"github.com/noah-isme/tutor-classes-api/pkg/timeofday"
)

type classRegistrationStore interface {
	CreateTutorWithClass(ctx context.Context, tutor *models.Tutor, class *models.Class, slots []models.ScheduleSlot) (string, error)
}

// ClassRegistrationService registers a tutor, a class and its weekly schedule as one unit.
type ClassRegistrationService struct {
	store     classRegistrationStore
	cache     *CacheService
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewClassRegistrationService constructs a ClassRegistrationService.
func NewClassRegistrationService(store classRegistrationStore, cache *CacheService, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ClassRegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassRegistrationService{store: store, cache: cache, validator: validate, metrics: metrics, logger: logger}
}

// Register validates req, converts its schedule to minute-of-day slots and
// persists everything atomically. It returns the new class id.
func (s *ClassRegistrationService) Register(ctx context.Context, req dto.RegisterClassRequest) (string, error) {
	tutor, class, slots, err := s.prepare(req)
	if err != nil {
		s.metrics.ObserveRegistration(OutcomeRejected)
		return "", err
	}

	start := time.Now()
	classID, err := s.store.CreateTutorWithClass(ctx, tutor, class, slots)
	s.metrics.ObserveStoreOperation("create_tutor_with_class", time.Since(start))
	if err != nil {
		s.metrics.ObserveRegistration(OutcomeFailed)
		s.logger.Error("class registration failed",
			zap.String("subject", class.Subject),
			zap.Int("slots", len(slots)),
			zap.Error(err),
		)
		return "", appErrors.WrapAs(err, appErrors.ErrRegistrationFailed)
	}

	s.metrics.ObserveRegistration(OutcomeCreated)
	s.logger.Info("class registered", zap.String("class_id", classID), zap.String("tutor_id", tutor.ID), zap.String("subject", class.Subject))
	_ = s.cache.Invalidate(ctx, searchCachePattern, subjectsCacheKey)
	return classID, nil
}

func (s *ClassRegistrationService) prepare(req dto.RegisterClassRequest) (*models.Tutor, *models.Class, []models.ScheduleSlot, error) {
	if len(req.Schedule) == 0 {
		return nil, nil, nil, appErrors.ErrEmptySchedule
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, describeValidation(err))
	}

	slots := make([]models.ScheduleSlot, 0, len(req.Schedule))
	for i, item := range req.Schedule {
		from, err := timeofday.Encode(item.From)
		if err != nil {
			return nil, nil, nil, scheduleTimeError(err, i, "from")
		}
		to, err := timeofday.Encode(item.To)
		if err != nil {
			return nil, nil, nil, scheduleTimeError(err, i, "to")
		}
		slots = append(slots, models.ScheduleSlot{WeekDay: int(*item.WeekDay), From: from, To: to})
	}

	tutor := &models.Tutor{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Whatsapp: req.Whatsapp,
		Bio:      req.Bio,
	}
	class := &models.Class{
		Subject: req.Subject,
		Cost:    float64(*req.Cost),
	}
	return tutor, class, slots, nil
}

func scheduleTimeError(err error, index int, field string) error {
	appErr := appErrors.FromError(err)
	return appErrors.Wrap(err, appErr.Code, appErr.Status, fmt.Sprintf("schedule[%d].%s: %s", index, field, appErr.Message))
}

func describeValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return appErrors.ErrValidation.Message
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return "invalid class registration: " + strings.Join(fields, "; ")
}
