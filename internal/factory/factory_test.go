package factory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/phishing-classifier/internal/adapters/cache"
	"github.com/mikey/phishing-classifier/internal/config"
)

func defaultConfig() *config.Config {
	return config.NewFromViper(config.NewEmptyViper())
}

func TestPipelineFactory(t *testing.T) {
	f := NewPipelineFactory(defaultConfig(), zap.NewNop())

	t.Run("loader uses configured columns", func(t *testing.T) {
		loader := f.CreateLoader()
		assert.Equal(t, "text", loader.TextColumn)
		assert.Equal(t, "label", loader.LabelColumn)
	})

	t.Run("dataset path", func(t *testing.T) {
		assert.Equal(t, "data/phishing_emails.csv", f.DatasetPath())
	})

	t.Run("training config", func(t *testing.T) {
		cfg := f.TrainingConfig()
		assert.Equal(t, 0.2, cfg.TestFraction)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 5000, cfg.MaxFeatures)
		assert.Equal(t, 1.0, cfg.Alpha)
	})
}

func TestCacheFactory(t *testing.T) {
	f := NewCacheFactory(defaultConfig(), zap.NewNop())

	t.Run("creates memory cache", func(t *testing.T) {
		repo, err := f.CreateCacheRepository()
		require.NoError(t, err)

		mc, ok := repo.(*cache.MemoryCache)
		require.True(t, ok)
		mc.Stop()
	})

	t.Run("ttl and enabled flags", func(t *testing.T) {
		ttl, err := f.GetCacheTTL()
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, ttl)
		assert.True(t, f.IsCacheEnabled())
	})

	t.Run("invalid cleanup frequency", func(t *testing.T) {
		v := config.NewEmptyViper()
		v.Set("cache.cleanup_frequency", "bogus")

		_, err := NewCacheFactory(config.NewFromViper(v), zap.NewNop()).CreateCacheRepository()
		assert.Error(t, err)
	})
}
