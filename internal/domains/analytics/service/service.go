package service

import (
	"context"
	"fmt"

	"cleanmatch/config"
	"cleanmatch/infras/otel"
	"cleanmatch/internal/domains/analytics/model/dto"
	bookingModel "cleanmatch/internal/domains/booking/model"
	bookingRepo "cleanmatch/internal/domains/booking/repository"
	userModel "cleanmatch/internal/domains/user/model"
	userRepo "cleanmatch/internal/domains/user/repository"
	"cleanmatch/shared"
	"cleanmatch/shared/cache"
	"cleanmatch/shared/constant"
	gDto "cleanmatch/shared/dto"
	"cleanmatch/shared/failure"

	"github.com/rs/zerolog/log"
)

// Analytics computes booking reports on demand by reducing the raw booking
// records inside the requested scheduled-date range.
type Analytics interface {
	CleanerReport(ctx context.Context, cleanerID string, rng dto.DateRange) (dto.CleanerReportResponse, error)
	HomeOwnerReport(ctx context.Context, homeOwnerID string, rng dto.DateRange) (dto.HomeOwnerReportResponse, error)
	PlatformReport(ctx context.Context, rng dto.DateRange) (dto.PlatformReportResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	userRepo    userRepo.User
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Analytics {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// summary is the shared reduction over one set of bookings.
type summary struct {
	total          int
	completed      int
	cancelled      int
	completedValue float64
	ratingSum      int
	ratingCount    int
	countsByStatus map[string]int
}

func reduce(bookings []bookingModel.Booking) summary {
	sum := summary{countsByStatus: map[string]int{}}

	for _, status := range bookingModel.Statuses() {
		sum.countsByStatus[status.String()] = 0
	}

	for _, booking := range bookings {
		sum.total++
		sum.countsByStatus[booking.Status.String()]++

		switch booking.Status {
		case bookingModel.StatusCompleted:
			sum.completed++
			sum.completedValue += booking.TotalPrice

			if booking.Rating != nil {
				sum.ratingSum += *booking.Rating
				sum.ratingCount++
			}
		case bookingModel.StatusCancelled:
			sum.cancelled++
		}
	}

	return sum
}

// averageRating is 0 when no completed booking carries a rating.
func (s summary) averageRating() float64 {
	if s.ratingCount == 0 {
		return 0
	}

	return float64(s.ratingSum) / float64(s.ratingCount)
}

func (s summary) averageBookingValue() float64 {
	return s.completedValue / float64(max(1, s.completed))
}

func (s *serviceImpl) CleanerReport(ctx context.Context, cleanerID string, rng dto.DateRange) (res dto.CleanerReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CleanerReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkUser(ctx, cleanerID, constant.RoleCleaner); err != nil {
		return res, err
	}

	filter := rng.Filters(bookingModel.FieldCleanerID, cleanerID)
	cacheKey := shared.BuildCacheKeyWithQuery(constant.CachePrefixCleanerReport, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cleaner report")

		return res, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for cleaner report")

		return res, fmt.Errorf("failed to get bookings for cleaner report: %w", err)
	}

	sum := reduce(bookings)

	res = dto.CleanerReportResponse{
		CleanerID:         cleanerID,
		TotalBookings:     sum.total,
		CompletedBookings: sum.completed,
		CancelledBookings: sum.cancelled,
		TotalEarnings:     sum.completedValue,
		AverageRating:     sum.averageRating(),
		CountsByStatus:    sum.countsByStatus,
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save cleaner report to cache")
	}

	return res, nil
}

func (s *serviceImpl) HomeOwnerReport(ctx context.Context, homeOwnerID string, rng dto.DateRange) (res dto.HomeOwnerReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HomeOwnerReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkUser(ctx, homeOwnerID, constant.RoleHomeOwner); err != nil {
		return res, err
	}

	filter := rng.Filters(bookingModel.FieldHomeOwnerID, homeOwnerID)
	cacheKey := shared.BuildCacheKeyWithQuery(constant.CachePrefixHomeOwnerReport, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for home owner report")

		return res, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for home owner report")

		return res, fmt.Errorf("failed to get bookings for home owner report: %w", err)
	}

	sum := reduce(bookings)

	res = dto.HomeOwnerReportResponse{
		HomeOwnerID:       homeOwnerID,
		TotalBookings:     sum.total,
		CompletedBookings: sum.completed,
		CancelledBookings: sum.cancelled,
		TotalSpent:        sum.completedValue,
		CountsByStatus:    sum.countsByStatus,
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save home owner report to cache")
	}

	return res, nil
}

func (s *serviceImpl) PlatformReport(ctx context.Context, rng dto.DateRange) (res dto.PlatformReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PlatformReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := rng.Filters("", "")
	cacheKey := shared.BuildCacheKeyWithQuery(constant.CachePrefixPlatformReport, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for platform report")

		return res, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for platform report")

		return res, fmt.Errorf("failed to get bookings for platform report: %w", err)
	}

	sum := reduce(bookings)

	res = dto.PlatformReportResponse{
		TotalBookings:       sum.total,
		CompletedBookings:   sum.completed,
		CancelledBookings:   sum.cancelled,
		TotalRevenue:        sum.completedValue,
		AverageBookingValue: sum.averageBookingValue(),
		CountsByStatus:      sum.countsByStatus,
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save platform report to cache")
	}

	return res, nil
}

// checkUser ensures the report subject exists with the expected role.
// Deactivated accounts stay reportable: their historical bookings survive
// deactivation and admins still need the numbers.
func (s *serviceImpl) checkUser(ctx context.Context, id, role string) error {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user for report")

		return fmt.Errorf("failed to get user for report: %w", err)
	}

	if user.ID == "" || user.Role != role {
		return failure.NotFound(fmt.Sprintf("%s not found", role))
	}

	return nil
}
