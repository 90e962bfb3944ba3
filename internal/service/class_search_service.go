package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
	"github.com/noah-isme/tutor-classes-api/pkg/timeofday"
)

const (
	searchCachePrefix  = "classes:search:"
	subjectsCacheKey   = "classes:subjects"
	searchCachePattern = searchCachePrefix + "*"
)

type classSearchStore interface {
	FindMatchingTutors(ctx context.Context, subject string, weekDay, minute int) ([]models.TutorWithClass, error)
	ListSubjects(ctx context.Context) ([]string, error)
	CountClasses(ctx context.Context) (int, error)
}

// ClassSearchService finds tutors whose class is open at a weekday and time.
type ClassSearchService struct {
	store   classSearchStore
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewClassSearchService constructs a ClassSearchService. cache and metrics may be nil.
func NewClassSearchService(store classSearchStore, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *ClassSearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassSearchService{store: store, cache: cache, metrics: metrics, logger: logger}
}

// Search validates the filter and returns every matching tutor/class pair.
// A week_day outside 0..6 is accepted and matches nothing.
func (s *ClassSearchService) Search(ctx context.Context, filter models.SearchFilter) ([]models.TutorWithClass, error) {
	if filter.Subject == "" || filter.WeekDay == "" || filter.Time == "" {
		return nil, appErrors.ErrMissingFilter
	}
	weekDay, err := strconv.Atoi(strings.TrimSpace(filter.WeekDay))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidFilter.Code, appErrors.ErrInvalidFilter.Status, "week_day must be an integer")
	}
	minute, err := timeofday.Encode(filter.Time)
	if err != nil {
		return nil, err
	}

	key := searchCacheKey(filter.Subject, weekDay, minute)
	var cached []models.TutorWithClass
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	start := time.Now()
	items, err := s.store.FindMatchingTutors(ctx, filter.Subject, weekDay, minute)
	s.metrics.ObserveStoreOperation("find_matching_tutors", time.Since(start))
	if err != nil {
		s.logger.Error("search classes failed",
			zap.String("subject", filter.Subject),
			zap.Int("week_day", weekDay),
			zap.Int("minute", minute),
			zap.Error(err),
		)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search classes")
	}
	if items == nil {
		items = []models.TutorWithClass{}
	}

	_ = s.cache.Set(ctx, key, items, 0)
	s.metrics.ObserveSearchResults(len(items))
	return items, nil
}

// Subjects lists the distinct subjects on offer.
func (s *ClassSearchService) Subjects(ctx context.Context) ([]string, error) {
	var cached []string
	if hit, _ := s.cache.Get(ctx, subjectsCacheKey, &cached); hit {
		return cached, nil
	}

	start := time.Now()
	subjects, err := s.store.ListSubjects(ctx)
	s.metrics.ObserveStoreOperation("list_subjects", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	if subjects == nil {
		subjects = []string{}
	}
	_ = s.cache.Set(ctx, subjectsCacheKey, subjects, 0)
	return subjects, nil
}

// Count returns the number of registered classes.
func (s *ClassSearchService) Count(ctx context.Context) (int, error) {
	start := time.Now()
	total, err := s.store.CountClasses(ctx)
	s.metrics.ObserveStoreOperation("count_classes", time.Since(start))
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count classes")
	}
	return total, nil
}

func searchCacheKey(subject string, weekDay, minute int) string {
	return fmt.Sprintf("%s%s:%d:%d", searchCachePrefix, url.QueryEscape(subject), weekDay, minute)
}
