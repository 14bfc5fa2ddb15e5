package services

import (
	"context"

	"storefront/models"

	"go.uber.org/zap"
)

// CatalogService is the read-only product lookup: detail by numeric id and
// case-insensitive name search.
type CatalogService struct {
	productRepo IProductRepository
	cache       *CacheManager
	logger      *zap.Logger
}

func NewCatalogService(pr IProductRepository, cache *CacheManager, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		productRepo: pr,
		cache:       cache,
		logger:      logger,
	}
}

func (s *CatalogService) GetByID(ctx context.Context, productID int) (*models.Product, *ServiceError) {
	if s.cache != nil {
		if product, ok := s.cache.GetProduct(ctx, productID); ok {
			return product, nil
		}
	}

	product, err := s.productRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, errNotFound("Product not found")
	}

	if s.cache != nil {
		s.cache.SetProductAsync(productID, product)
	}
	return product, nil
}

// Search matches product names against the query, case-insensitively. An
// empty result is a valid outcome, not an error.
func (s *CatalogService) Search(ctx context.Context, query string) ([]*models.Product, *ServiceError) {
	if s.cache != nil {
		if products, ok := s.cache.GetSearch(ctx, query); ok {
			return products, nil
		}
	}

	products, err := s.productRepo.SearchByName(ctx, query)
	if err != nil {
		s.logger.Error("Product search failed", zap.Error(err), zap.String("query", query))
		return nil, errInternal("Internal Server Error")
	}
	if products == nil {
		products = []*models.Product{}
	}

	if s.cache != nil {
		s.cache.SetSearchAsync(query, products)
	}
	return products, nil
}
