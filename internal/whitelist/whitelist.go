package whitelist

import (
	"strings"

	"go.uber.org/zap"
)

// Checker reports whether a sender's domain is trusted enough to bypass
// classification entirely
type Checker struct {
	domains []string
	logger  *zap.Logger
}

// NewChecker creates a new whitelist checker
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	normalized := make([]string, 0, len(domains))
	for _, domain := range domains {
		d := strings.ToLower(strings.TrimSpace(domain))
		if d != "" {
			normalized = append(normalized, d)
		}
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized whitelist checker", zap.Strings("domains", normalized))
	}

	return &Checker{
		domains: normalized,
		logger:  logger,
	}
}

// IsWhitelisted checks if the sender's domain, or any parent domain, is
// whitelisted
func (c *Checker) IsWhitelisted(from string) bool {
	if len(c.domains) == 0 {
		return false
	}

	parts := strings.Split(from, "@")
	if len(parts) != 2 {
		return false
	}
	domain := strings.ToLower(strings.TrimSuffix(parts[1], ">"))

	for _, trusted := range c.domains {
		if domain == trusted || strings.HasSuffix(domain, "."+trusted) {
			if c.logger != nil {
				c.logger.Debug("Domain is whitelisted",
					zap.String("domain", domain),
					zap.String("email", from))
			}
			return true
		}
	}

	return false
}
