package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freelancedesk/freelance-tracker/internal/domain/stats"
)

func TestDisabledCacheIsANoOp(t *testing.T) {
	ctx := context.Background()

	var nilCache *SummaryCache
	_, ok := nilCache.Get(ctx)
	assert.False(t, ok)
	nilCache.Set(ctx, stats.Summary{})
	nilCache.Invalidate(ctx)

	c := NewSummaryCache(nil, 0)
	_, ok = c.Get(ctx)
	assert.False(t, ok)
	c.Set(ctx, stats.Summary{TotalClients: 3})
	_, ok = c.Get(ctx)
	assert.False(t, ok)
	c.Invalidate(ctx)
}
