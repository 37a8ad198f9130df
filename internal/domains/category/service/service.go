package service

import (
	"context"
	"fmt"

	"cleanmatch/config"
	"cleanmatch/infras/otel"
	"cleanmatch/internal/domains/category/model"
	"cleanmatch/internal/domains/category/model/dto"
	"cleanmatch/internal/domains/category/repository"
	"cleanmatch/shared"
	"cleanmatch/shared/cache"
	"cleanmatch/shared/constant"
	gDto "cleanmatch/shared/dto"
	"cleanmatch/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCategory    = "category:get"
	cacheGetAllCategory = "category:gets"
)

type Category interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) error
	Get(ctx context.Context, id string) (dto.CategoryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCategoriesResponse, error)
	Update(ctx context.Context, req dto.UpdateCategoryRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Category
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Category {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	username := shared.UsernameFromContext(ctx)

	nameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Name,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("category name already exists")
	}

	if err = s.repo.Insert(ctx, req.ToModel(username)); err != nil {
		log.Error().Err(err).Msg("failed to create category")

		return fmt.Errorf("failed to create category: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCategory)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCategory, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for category")

		return res, nil
	}

	category, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get category")

		return res, fmt.Errorf("failed to get category: %w", err)
	}

	if category.ID == "" {
		return res, failure.NotFound("category not found")
	}

	res.FromModel(category)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save category to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCategory, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for categories")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count categories")

		return res, fmt.Errorf("failed to count categories: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save categories to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCategoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCategoryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	username := shared.UsernameFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("category not found")
	}

	updatedFields := shared.TransformFields(req, username)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update category")

		return fmt.Errorf("failed to update category: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetCategory, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete category from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCategory)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("category not found")
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete category")

		return fmt.Errorf("failed to delete category: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetCategory, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete category from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCategory)

	return nil
}
