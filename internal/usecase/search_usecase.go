package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/finrecords/internal/domain"
	"github.com/iho/finrecords/internal/infrastructure/metrics"
)

// SearchUseCase answers open-record queries by person name.
type SearchUseCase struct {
	records  FinancialRecordRepository
	cache    Cache
	cacheTTL time.Duration
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

// NewSearchUseCase creates a new SearchUseCase. The cache and metrics are
// optional; pass nil to query the store on every request uninstrumented.
func NewSearchUseCase(records FinancialRecordRepository, cache Cache, cacheTTL time.Duration, logger zerolog.Logger, m *metrics.Metrics) *SearchUseCase {
	return &SearchUseCase{
		records:  records,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		metrics:  m,
	}
}

// OpenRecordsByName returns the open financial records for the person named
// by a "First Last" query string, newest transaction first. Records are open
// when not closed, with a positive remaining amount, and a transaction date
// not in the future.
func (uc *SearchUseCase) OpenRecordsByName(ctx context.Context, name string) ([]*domain.FinancialRecord, error) {
	start := time.Now()

	firstName, surname, err := splitName(name)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SearchRequests.Inc()
	}

	cacheKey := "open-records:" + firstName + ":" + surname

	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil && len(raw) > 0 {
			var cached []*domain.FinancialRecord
			if json.Unmarshal(raw, &cached) == nil {
				if uc.metrics != nil {
					uc.metrics.SearchCacheHits.Inc()
					uc.metrics.SearchDuration.Observe(time.Since(start).Seconds())
				}
				return cached, nil
			}
		}
	}

	if uc.metrics != nil {
		uc.metrics.SearchCacheMiss.Inc()
	}

	records, err := uc.records.ListOpenByPerson(ctx, firstName, surname, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(records); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, raw, uc.cacheTTL); err != nil {
				uc.logger.Warn().Err(err).Str("key", cacheKey).Msg("search cache set failed")
			}
		}
	}

	if uc.metrics != nil {
		uc.metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}

	return records, nil
}

// splitName splits a "First Last" query into its two parts.
func splitName(name string) (string, string, error) {
	parts := strings.Fields(name)
	if len(parts) != 2 {
		return "", "", domain.ErrInvalidSearchName
	}
	return parts[0], parts[1], nil
}
