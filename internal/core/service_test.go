package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/phishing-classifier/internal/whitelist"
)

type fakeCache struct {
	entries map[string]*CacheEntry
	sets    int
	gets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*CacheEntry)}
}

func (c *fakeCache) Get(ctx context.Context, digest string) (*CacheEntry, error) {
	c.gets++
	if entry, ok := c.entries[digest]; ok {
		return entry, nil
	}
	return nil, assert.AnError
}

func (c *fakeCache) Set(ctx context.Context, entry *CacheEntry) error {
	c.sets++
	c.entries[entry.Digest] = entry
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, digest string) error {
	delete(c.entries, digest)
	return nil
}

func (c *fakeCache) Cleanup(ctx context.Context) error { return nil }

func newTestService(t *testing.T, cache CacheRepository, domains []string) *PhishingFilterService {
	t.Helper()

	pipeline, err := Train(trainingRecords(), defaultTrainingConfig(), zap.NewNop())
	require.NoError(t, err)

	return NewPhishingFilterService(
		pipeline.Cleaner,
		pipeline.Vectorizer,
		pipeline.Classifier,
		cache,
		whitelist.NewChecker(domains, zap.NewNop()),
		zap.NewNop(),
		cache != nil,
		time.Hour,
	)
}

func TestAnalyzeEmailClassifies(t *testing.T) {
	service := newTestService(t, nil, nil)

	tests := []struct {
		name         string
		email        *Email
		wantPhishing bool
		wantLabel    string
	}{
		{
			name: "phishing email",
			email: &Email{
				From:    "scam@evil.example",
				Subject: "You won",
				Body:    "click now for your free prize",
			},
			wantPhishing: true,
			wantLabel:    LabelPhishing,
		},
		{
			name: "safe email",
			email: &Email{
				From:    "colleague@corp.example",
				Subject: "Quarterly review",
				Body:    "the meeting agenda is attached",
			},
			wantPhishing: false,
			wantLabel:    LabelSafe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.AnalyzeEmail(context.Background(), tt.email)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPhishing, result.IsPhishing)
			assert.Equal(t, tt.wantLabel, result.Label)
			assert.Equal(t, "multinomial-nb", result.ModelUsed)
			assert.Greater(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
			assert.False(t, result.AnalyzedAt.IsZero())
		})
	}
}

func TestAnalyzeEmailUsesCache(t *testing.T) {
	cache := newFakeCache()
	service := newTestService(t, cache, nil)

	email := &Email{
		From:    "scam@evil.example",
		Subject: "You won",
		Body:    "click now for your free prize",
	}

	first, err := service.AnalyzeEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, "multinomial-nb", first.ModelUsed)
	assert.Equal(t, 1, cache.sets)

	second, err := service.AnalyzeEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, "cache", second.ModelUsed)
	assert.Equal(t, first.Label, second.Label)
	assert.Equal(t, first.IsPhishing, second.IsPhishing)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, 1, cache.sets, "cache hits do not rewrite the entry")
}

func TestAnalyzeEmailCacheKeyedOnContent(t *testing.T) {
	cache := newFakeCache()
	service := newTestService(t, cache, nil)

	a := &Email{From: "x@a.example", Subject: "You won", Body: "click now for your free prize"}
	b := &Email{From: "y@b.example", Subject: "Agenda", Body: "the meeting agenda is attached"}

	_, err := service.AnalyzeEmail(context.Background(), a)
	require.NoError(t, err)
	_, err = service.AnalyzeEmail(context.Background(), b)
	require.NoError(t, err)

	assert.Len(t, cache.entries, 2, "different content yields different digests")
}

func TestAnalyzeEmailWhitelistBypass(t *testing.T) {
	cache := newFakeCache()
	service := newTestService(t, cache, []string{"corp.example"})

	email := &Email{
		From:    "anyone@corp.example",
		Subject: "You won",
		Body:    "click now for your free prize",
	}

	result, err := service.AnalyzeEmail(context.Background(), email)
	require.NoError(t, err)

	assert.False(t, result.IsPhishing)
	assert.Equal(t, LabelSafe, result.Label)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, "whitelist", result.ModelUsed)
	assert.Zero(t, cache.gets, "whitelisted mail never reaches the pipeline")
}
