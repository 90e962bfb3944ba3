package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
)

type fakeCacheRepo struct {
	mu      sync.Mutex
	items   map[string][]byte
	getErr  error
	setErr  error
	deleted []string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{items: make(map[string][]byte)}
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return f.getErr
	}
	raw, ok := f.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.items[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range f.items {
		if strings.HasPrefix(key, prefix) {
			delete(f.items, key)
		}
	}
	return nil
}

type findCall struct {
	Subject string
	WeekDay int
	Minute  int
}

type fakeSearchStore struct {
	items      []models.TutorWithClass
	subjects   []string
	total      int
	err        error
	findCalls  []findCall
	listCalls  int
	countCalls int
}

func (f *fakeSearchStore) FindMatchingTutors(ctx context.Context, subject string, weekDay, minute int) ([]models.TutorWithClass, error) {
	f.findCalls = append(f.findCalls, findCall{Subject: subject, WeekDay: weekDay, Minute: minute})
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeSearchStore) ListSubjects(ctx context.Context) ([]string, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.subjects, nil
}

func (f *fakeSearchStore) CountClasses(ctx context.Context) (int, error) {
	f.countCalls++
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}
