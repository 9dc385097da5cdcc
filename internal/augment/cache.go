package augment

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/garden-advisor/internal/domain"
)

// reportCache holds recent augmented reports keyed by a fingerprint of the
// normalized request. Entries are cloned on the way out so restamping never
// touches the stored value.
type reportCache struct {
	lru *expirable.LRU[string, *domain.Report]
}

func newReportCache(size int, ttl time.Duration) *reportCache {
	return &reportCache{
		lru: expirable.NewLRU[string, *domain.Report](size, nil, ttl),
	}
}

func (c *reportCache) Get(key string) (*domain.Report, bool) {
	report, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	return report.Clone(), true
}

func (c *reportCache) Set(key string, report *domain.Report) {
	c.lru.Add(key, report.Clone())
}

// fingerprint derives a stable cache key from a normalized request. The
// normalizer already fixed item order, so equal requests hash equally.
func fingerprint(n *domain.NormalizedRequest) string {
	data, err := json.Marshal(n)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
