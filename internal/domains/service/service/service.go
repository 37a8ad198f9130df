package service

import (
	"context"
	"fmt"

	"cleanmatch/config"
	"cleanmatch/infras/otel"
	categoryModel "cleanmatch/internal/domains/category/model"
	categoryRepo "cleanmatch/internal/domains/category/repository"
	"cleanmatch/internal/domains/service/model"
	"cleanmatch/internal/domains/service/model/dto"
	"cleanmatch/internal/domains/service/repository"
	"cleanmatch/shared"
	"cleanmatch/shared/cache"
	"cleanmatch/shared/constant"
	gDto "cleanmatch/shared/dto"
	"cleanmatch/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
)

type Service interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) error
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServicesResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Service
	categoryRepo categoryRepo.Category
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Service, categoryRepo categoryRepo.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Service {
	return &serviceImpl{
		repo:         repo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	username := shared.UsernameFromContext(ctx)

	categoryExists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, categoryModel.FieldID, categoryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !categoryExists {
		return failure.BadRequestFromString("category not found")
	}

	if err = s.repo.Insert(ctx, req.ToModel(username)); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return fmt.Errorf("failed to create service: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllService)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	service, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == "" {
		return res, failure.NotFound("service not found")
	}

	res.FromModel(service)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save service to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save services to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateServiceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	username := shared.UsernameFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service not found")
	}

	if req.CategoryID != "" {
		categoryExists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(req.CategoryID, categoryModel.FieldID, categoryModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if category exists")

			return fmt.Errorf("failed to check if category exists: %w", err)
		}

		if !categoryExists {
			return failure.BadRequestFromString("category not found")
		}
	}

	updatedFields := shared.TransformFields(req, username)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetService, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete service from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllService)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service not found")
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetService, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete service from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllService)

	return nil
}
