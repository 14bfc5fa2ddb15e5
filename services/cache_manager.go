package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCachePrefix = "product:detail:"
	searchCachePrefix  = "product:search:"
)

// CacheManager fronts catalog reads with Redis. The catalog is maintained
// out of process, so entries simply expire; there is no invalidation hook.
// A nil client disables caching.
type CacheManager struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCacheManager(client *redis.Client, ttl time.Duration, logger *zap.Logger) *CacheManager {
	return &CacheManager{
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetProduct retrieves a cached product detail.
func (cm *CacheManager) GetProduct(ctx context.Context, productID int) (*models.Product, bool) {
	if cm.redis == nil {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, cm.productKey(productID)).Result()
	if err != nil {
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal([]byte(cached), &product); err != nil {
		cm.logger.Warn("Failed to unmarshal cached product", zap.Error(err))
		return nil, false
	}
	return &product, true
}

// SetProductAsync caches a product detail without blocking the request.
func (cm *CacheManager) SetProductAsync(productID int, product *models.Product) {
	if cm.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		productJSON, err := json.Marshal(product)
		if err != nil {
			cm.logger.Warn("Failed to marshal product for cache", zap.Error(err), zap.Int("product_id", productID))
			return
		}
		if err := cm.redis.Set(bgCtx, cm.productKey(productID), productJSON, cm.ttl).Err(); err != nil {
			cm.logger.Warn("Failed to cache product", zap.Error(err), zap.Int("product_id", productID))
		}
	}()
}

// GetSearch retrieves a cached search result set.
func (cm *CacheManager) GetSearch(ctx context.Context, query string) ([]*models.Product, bool) {
	if cm.redis == nil {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, searchCachePrefix+query).Result()
	if err != nil {
		return nil, false
	}

	var products []*models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil {
		cm.logger.Warn("Failed to unmarshal cached search results", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetSearchAsync caches a search result set without blocking the request.
func (cm *CacheManager) SetSearchAsync(query string, products []*models.Product) {
	if cm.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		resultJSON, err := json.Marshal(products)
		if err != nil {
			cm.logger.Warn("Failed to marshal search results for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(bgCtx, searchCachePrefix+query, resultJSON, cm.ttl).Err(); err != nil {
			cm.logger.Warn("Failed to cache search results", zap.Error(err))
		}
	}()
}

func (cm *CacheManager) productKey(productID int) string {
	return fmt.Sprintf("%s%d", productCachePrefix, productID)
}
