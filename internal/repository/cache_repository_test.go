package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil)
	ctx := context.Background()

	var dest []string
	err := repo.Get(ctx, "classes:search:Math:1:540", &dest)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
	assert.NoError(t, repo.Set(ctx, "classes:search:Math:1:540", []string{"x"}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "classes:*"))
	assert.NoError(t, repo.Close())
}
