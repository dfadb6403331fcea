package exchange

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type RateService interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// CachedRateService caches successful lookups so a flaky network does not
// hammer the rate API on every display refresh.
type CachedRateService struct {
	client RateClient
	cache  *cache.Cache
}

func NewCachedRateService(client RateClient, ttl time.Duration) *CachedRateService {
	return &CachedRateService{
		client: client,
		cache:  cache.New(ttl, 2*ttl),
	}
}

func (s *CachedRateService) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	key := from + "/" + to
	if cached, found := s.cache.Get(key); found {
		return cached.(decimal.Decimal), nil
	}

	rate, err := s.client.Rate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	log.Debugf("Caching exchange rate %s: %s", key, rate)
	s.cache.Set(key, rate, cache.DefaultExpiration)
	return rate, nil
}
