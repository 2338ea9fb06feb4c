package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/internal/product"
	"github.com/fekuna/omnipos-commerce/internal/product/dto"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/search"
	"github.com/fekuna/omnipos-commerce/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	indexName     = "products"
	listKeyPrefix = "products:list:"
	listCacheTTL  = 5 * time.Minute
	defaultUnit   = "stk"
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"name": { "type": "text" },
			"description": { "type": "text" },
			"sku": { "type": "keyword" },
			"slug": { "type": "keyword" },
			"category_id": { "type": "keyword" },
			"is_active": { "type": "boolean" },
			"price": { "type": "double" },
			"created_at": { "type": "date" }
		}
	}
}`

// Cache is the slice of pkg/cache the product list cache needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}

// SearchIndex is the slice of pkg/search used for product search.
type SearchIndex interface {
	CreateIndex(ctx context.Context, index, mapping string) error
	Index(ctx context.Context, index, id string, doc any) error
	Delete(ctx context.Context, index, id string) error
	Search(ctx context.Context, index string, query map[string]any) (*search.SearchResponse, error)
}

type productUseCase struct {
	repo       product.Repository
	categories product.CategoryFinder
	cache      Cache
	es         SearchIndex
	logger     logger.ZapLogger
}

// NewProductUseCase wires the product use case. cache and es may be nil.
func NewProductUseCase(repo product.Repository, categories product.CategoryFinder, cache Cache, es SearchIndex, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:       repo,
		categories: categories,
		cache:      cache,
		es:         es,
		logger:     log,
	}
}

// EnsureIndex creates the search index on startup.
func EnsureIndex(ctx context.Context, es SearchIndex) error {
	return es.CreateIndex(ctx, indexName, indexMapping)
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	unique, err := uc.repo.IsSKUUnique(ctx, input.SKU, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperror.Conflict("SKU already exists")
	}

	categoryID, err := uc.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	slug := utils.GenerateSlug(input.Name)
	if slug == "" {
		return nil, apperror.Validation("Validation failed: name must contain letters or digits")
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = defaultUnit
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CategoryID:  categoryID,
		SKU:         strings.TrimSpace(input.SKU),
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: optional(input.Description),
		Price:       input.Price,
		Unit:        unit,
		ImageURL:    optional(input.ImageURL),
		IsActive:    true,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) resolveCategory(ctx context.Context, id string) (*string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	cat, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperror.NotFound("Category not found")
	}
	return &id, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	if err := uc.es.Index(ctx, indexName, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.String("id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.withCategory(ctx, p)
}

func (uc *productUseCase) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	p, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.withCategory(ctx, p)
}

func (uc *productUseCase) withCategory(ctx context.Context, p *model.Product) (*model.Product, error) {
	if p == nil {
		return nil, apperror.NotFound("Product not found")
	}
	if p.CategoryID != nil {
		cat, err := uc.categories.FindByID(ctx, *p.CategoryID)
		if err != nil {
			return nil, err
		}
		p.Category = cat
	}
	return p, nil
}

type cachedList struct {
	Products []model.Product
	Count    int
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	// 1. Cache
	cacheKey, err := generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		val, ok, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			uc.logger.Warn("product cache read failed", zap.Error(err))
		} else if ok {
			var result cachedList
			if err := json.Unmarshal(val, &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	// 2. Search via Elastic when a query is present
	if filters.SearchQuery != "" && uc.es != nil {
		products, count, err := uc.search(ctx, filters)
		if err == nil {
			return products, count, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	// 3. Database
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if cacheKey != "" && uc.cache != nil {
		if data, err := json.Marshal(cachedList{Products: products, Count: count}); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, data, listCacheTTL); err != nil {
				uc.logger.Warn("product cache write failed", zap.Error(err))
			}
		}
	}

	return products, count, nil
}

func (uc *productUseCase) search(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	filter := []map[string]any{}
	if filters.CategoryID != "" {
		filter = append(filter, map[string]any{"term": map[string]any{"category_id": filters.CategoryID}})
	}
	if filters.IsActive != nil {
		filter = append(filter, map[string]any{"term": map[string]any{"is_active": *filters.IsActive}})
	}
	priceRange := map[string]any{}
	if filters.MinPrice != nil {
		priceRange["gte"] = *filters.MinPrice
	}
	if filters.MaxPrice != nil {
		priceRange["lte"] = *filters.MaxPrice
	}
	if len(priceRange) > 0 {
		filter = append(filter, map[string]any{"range": map[string]any{"price": priceRange}})
	}

	q := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": []map[string]any{
					{
						"multi_match": map[string]any{
							"query":     filters.SearchQuery,
							"fields":    []string{"name^3", "sku", "description"},
							"fuzziness": "AUTO",
						},
					},
				},
				"filter": filter,
			},
		},
	}
	if filters.PageSize > 0 {
		q["from"] = (filters.Page - 1) * filters.PageSize
		q["size"] = filters.PageSize
	}
	if col, ok := map[string]string{"name": "slug", "price": "price", "created_at": "created_at"}[filters.SortBy]; ok {
		order := "desc"
		if strings.ToLower(filters.SortOrder) == "asc" {
			order = "asc"
		}
		q["sort"] = []map[string]any{{col: map[string]any{"order": order}}}
	}

	res, err := uc.es.Search(ctx, indexName, q)
	if err != nil {
		return nil, 0, err
	}

	products := make([]model.Product, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err != nil {
			uc.logger.Warn("skipping undecodable search hit", zap.String("id", hit.ID), zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products, res.Hits.Total.Value, nil
}

func generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", listKeyPrefix, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, listKeyPrefix+"*"); err != nil {
		uc.logger.Error("failed to invalidate product cache", zap.Error(err))
	}
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Product not found")
	}

	if input.SKU != nil && *input.SKU != p.SKU {
		unique, err := uc.repo.IsSKUUnique(ctx, *input.SKU, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, apperror.Conflict("SKU already exists")
		}
		p.SKU = strings.TrimSpace(*input.SKU)
	}
	if input.Name != nil {
		slug := utils.GenerateSlug(*input.Name)
		if slug == "" {
			return nil, apperror.Validation("Validation failed: name must contain letters or digits")
		}
		p.Name = strings.TrimSpace(*input.Name)
		p.Slug = slug
	}
	if input.CategoryID != nil {
		categoryID, err := uc.resolveCategory(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = categoryID
	}
	if input.Description != nil {
		p.Description = optional(*input.Description)
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Unit != nil && strings.TrimSpace(*input.Unit) != "" {
		p.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.ImageURL != nil {
		p.ImageURL = optional(*input.ImageURL)
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperror.NotFound("Product not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateProductCache(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), indexName, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}

	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
