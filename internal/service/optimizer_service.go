package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"trade-navigator-service/internal/entity"
	"trade-navigator-service/internal/pricing"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// resultCacheTTL bounds how long a stored result may be reused before the
// optimizer recomputes from scratch.
const resultCacheTTL = 24 * time.Hour

// historyLimit caps the rows returned by the usage history endpoint.
const historyLimit = 20

// ResultStore is the persistence surface the optimizer needs for results.
type ResultStore interface {
	InsertResult(ctx context.Context, userID string, result *entity.OptimizationResult) error
	FindRecentResult(ctx context.Context, productID string) (*entity.OptimizationResult, error)
}

// UsageStore lists the per-tenant usage trail.
type UsageStore interface {
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]entity.UsageRecord, error)
}

// OptimizerService runs price optimizations, reuses recent results and records
// usage events. Persistence and telemetry are best effort: a dead cache,
// database or broker degrades to a fresh computation, never to a failed
// request.
type OptimizerService struct {
	resultStore ResultStore
	usageStore  UsageStore
	engine      *pricing.Engine
	rdb         *redis.Client
	kafkaWriter *kafka.Writer
}

// NewOptimizerService creates a new instance of OptimizerService.
func NewOptimizerService(resultStore ResultStore, usageStore UsageStore, engine *pricing.Engine, rdb *redis.Client, kafkaWriter *kafka.Writer) *OptimizerService {
	return &OptimizerService{
		resultStore: resultStore,
		usageStore:  usageStore,
		engine:      engine,
		rdb:         rdb,
		kafkaWriter: kafkaWriter,
	}
}

// OptimizePricing returns a fresh or recently cached optimization for the
// request's product.
func (s *OptimizerService) OptimizePricing(ctx context.Context, userID string, req *entity.OptimizeRequest) (*entity.OptimizationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if cached := s.lookupRecent(ctx, req.Product.ID); cached != nil {
		logger.Info().Msgf("Reusing recent optimization result %s for product %s", cached.ID, req.Product.ID)
		return cached, nil
	}

	result := s.engine.Optimize(req)
	logger.Info().Msgf("Computed optimization result %s for product %s", result.ID, req.Product.ID)

	s.storeResult(ctx, userID, result)
	s.publishUsage(ctx, userID, req, result)

	return result, nil
}

// Strategies exposes the strategy catalog the optimizer evaluates.
func (s *OptimizerService) Strategies() []entity.Strategy {
	return s.engine.Strategies()
}

// RecentHistory returns the tenant's latest optimization runs.
func (s *OptimizerService) RecentHistory(ctx context.Context, userID string) ([]entity.UsageRecord, error) {
	records, err := s.usageStore.ListRecentByUser(ctx, userID, historyLimit)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing usage history for user %s", userID)
		return nil, err
	}
	return records, nil
}

// lookupRecent checks the cache and then the result store for a result younger
// than resultCacheTTL. Lookup failures are treated as misses.
func (s *OptimizerService) lookupRecent(ctx context.Context, productID string) *entity.OptimizationResult {
	key := fmt.Sprintf("optimization:%s", productID)

	if s.rdb != nil {
		resultCache, err := s.rdb.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				logger.Warn().Msgf("Result for product %s not found in cache", productID)
			} else {
				logger.Error().Err(err).Msgf("Error getting result for product %s from cache", productID)
			}
		}

		if resultCache != "" {
			var result entity.OptimizationResult
			if err := json.Unmarshal([]byte(resultCache), &result); err != nil {
				logger.Error().Err(err).Msgf("Error unmarshalling cached result for product %s", productID)
			} else if time.Since(result.CreatedAt) < resultCacheTTL {
				return &result
			}
		}
	}

	result, err := s.resultStore.FindRecentResult(ctx, productID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error finding stored result for product %s", productID)
		return nil
	}
	if result == nil || time.Since(result.CreatedAt) >= resultCacheTTL {
		return nil
	}

	s.cacheResult(ctx, result)
	return result
}

// storeResult persists the result and refreshes the cache. Failures are
// logged and swallowed.
func (s *OptimizerService) storeResult(ctx context.Context, userID string, result *entity.OptimizationResult) {
	if err := s.resultStore.InsertResult(ctx, userID, result); err != nil {
		logger.Error().Err(err).Msgf("Error storing optimization result %s", result.ID)
	}
	s.cacheResult(ctx, result)
}

func (s *OptimizerService) cacheResult(ctx context.Context, result *entity.OptimizationResult) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling result %s for cache", result.ID)
		return
	}
	key := fmt.Sprintf("optimization:%s", result.Product.ID)
	if err := s.rdb.Set(ctx, key, payload, resultCacheTTL).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error caching result for product %s", result.Product.ID)
	}
}

// publishUsage emits a usage event for the consumer to persist. Failures are
// logged and swallowed.
func (s *OptimizerService) publishUsage(ctx context.Context, userID string, req *entity.OptimizeRequest, result *entity.OptimizationResult) {
	// if env is set to test, skip publishing
	if s.kafkaWriter == nil || os.Getenv("ENV") == "test" {
		return
	}

	record := entity.UsageRecord{
		UserID:        userID,
		ProductID:     req.Product.ID,
		ResultID:      result.ID,
		TargetMargin:  result.TargetMargin,
		ScenarioCount: len(req.Scenarios),
		CreatedAt:     result.CreatedAt,
	}
	payload, err := json.Marshal(record)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling usage record for result %s", result.ID)
		return
	}

	// usage.recorded.<result-id>
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("usage.recorded.%s", result.ID)),
		Value: payload,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing usage record for result %s", result.ID)
	}
}
