package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/mikey/phishing-classifier/internal/whitelist"
	"go.uber.org/zap"
)

// PhishingFilterService is the core service for phishing detection. It holds
// the fitted pipeline artifacts; all of them are written once at training
// time and read-only here.
type PhishingFilterService struct {
	cleaner      TextCleaner
	transformer  FeatureTransformer
	classifier   Classifier
	cache        CacheRepository
	whitelist    *whitelist.Checker
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewPhishingFilterService creates a new phishing filter service
func NewPhishingFilterService(
	cleaner TextCleaner,
	transformer FeatureTransformer,
	classifier Classifier,
	cache CacheRepository,
	wl *whitelist.Checker,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
) *PhishingFilterService {
	return &PhishingFilterService{
		cleaner:      cleaner,
		transformer:  transformer,
		classifier:   classifier,
		cache:        cache,
		whitelist:    wl,
		logger:       logger,
		cacheEnabled: cacheEnabled && cache != nil,
		cacheTTL:     cacheTTL,
	}
}

// AnalyzeEmail classifies an email as phishing or safe
func (s *PhishingFilterService) AnalyzeEmail(ctx context.Context, email *Email) (*AnalysisResult, error) {
	// Check whitelist first
	if s.whitelist != nil && s.whitelist.IsWhitelisted(email.From) {
		s.logger.Info("Skipping classification for whitelisted domain",
			zap.String("sender", email.From),
			zap.String("action", "whitelist_bypass"))

		return &AnalysisResult{
			IsPhishing: false,
			Label:      LabelSafe,
			Confidence: 1.0,
			AnalyzedAt: time.Now(),
			ModelUsed:  "whitelist",
		}, nil
	}

	cleaned := s.cleaner.Clean(email.Subject + " " + email.Body)
	digest := contentDigest(cleaned)

	// Check cache if enabled
	if s.cacheEnabled {
		if entry, err := s.cache.Get(ctx, digest); err == nil {
			s.logger.Debug("Cache hit for message digest", zap.String("digest", digest))
			return &AnalysisResult{
				IsPhishing: entry.IsPhishing,
				Label:      entry.Label,
				Confidence: entry.Confidence,
				AnalyzedAt: time.Now(),
				ModelUsed:  "cache",
			}, nil
		}
	}

	vec := s.transformer.TransformOne(cleaned)
	code := s.classifier.PredictOne(vec)
	probs := s.classifier.Proba(vec)
	label := s.classifier.Classes()[code]

	result := &AnalysisResult{
		IsPhishing: label == LabelPhishing,
		Label:      label,
		Confidence: probs[code],
		AnalyzedAt: time.Now(),
		ModelUsed:  "multinomial-nb",
	}

	// Update cache with result if enabled
	if s.cacheEnabled {
		entry := &CacheEntry{
			Digest:     digest,
			Label:      result.Label,
			IsPhishing: result.IsPhishing,
			Confidence: result.Confidence,
			LastSeen:   time.Now(),
			ExpiresAt:  time.Now().Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update cache", zap.Error(err))
		}
	}

	return result, nil
}

func contentDigest(cleaned string) string {
	sum := sha256.Sum256([]byte(cleaned))
	return hex.EncodeToString(sum[:])
}
