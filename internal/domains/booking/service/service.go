package service

import (
	"context"
	"fmt"

	"cleanmatch/config"
	"cleanmatch/infras/kafka"
	"cleanmatch/infras/otel"
	"cleanmatch/internal/domains/booking/model"
	"cleanmatch/internal/domains/booking/model/dto"
	"cleanmatch/internal/domains/booking/repository"
	serviceModel "cleanmatch/internal/domains/service/model"
	serviceRepo "cleanmatch/internal/domains/service/repository"
	userModel "cleanmatch/internal/domains/user/model"
	userRepo "cleanmatch/internal/domains/user/repository"
	"cleanmatch/shared"
	"cleanmatch/shared/cache"
	"cleanmatch/shared/constant"
	gDto "cleanmatch/shared/dto"
	"cleanmatch/shared/failure"
	"cleanmatch/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	Reschedule(ctx context.Context, req dto.RescheduleBookingRequest, id string) error
	UpdateNotes(ctx context.Context, req dto.UpdateNotesRequest, id string) error
	AddReview(ctx context.Context, req dto.AddReviewRequest, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	userRepo    userRepo.User
	serviceRepo serviceRepo.Service
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	otel        otel.Otel

	// locks serializes mutations per booking id so concurrent transitions
	// cannot both read the same current status.
	locks *keyedMutex
}

func New(repo repository.Booking, userRepo userRepo.User, serviceRepo serviceRepo.Service, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafkaClient,
		otel:        otel,
		locks:       newKeyedMutex(),
	}
}

func (s *serviceImpl) lockBooking(id string) func() {
	return s.locks.Lock(id)
}

func (s *serviceImpl) getUserWithRole(ctx context.Context, id, role string) (userModel.User, error) {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return user, failure.BadRequestFromString(fmt.Sprintf("%s not found", role))
	}

	if user.Role != role {
		return user, failure.BadRequestFromString(fmt.Sprintf("user %s is not a %s", id, role))
	}

	if !user.Active {
		return user, failure.BadRequestFromString(fmt.Sprintf("%s account is deactivated", role))
	}

	return user, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	username := shared.UsernameFromContext(ctx)

	if _, err = s.getUserWithRole(ctx, req.CleanerID, constant.RoleCleaner); err != nil {
		log.Error().Err(err).Str("cleaner_id", req.CleanerID).Msg("cleaner validation failed")

		return res, err
	}

	if _, err = s.getUserWithRole(ctx, req.HomeOwnerID, constant.RoleHomeOwner); err != nil {
		log.Error().Err(err).Str("home_owner_id", req.HomeOwnerID).Msg("home owner validation failed")

		return res, err
	}

	service, err := s.serviceRepo.Get(ctx, shared.FilterByID(req.ServiceID, serviceModel.FieldID, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == "" {
		return res, failure.BadRequestFromString("service not found")
	}

	if !service.Active {
		return res, failure.BadRequestFromString("service is not available for booking")
	}

	// The total is frozen at creation time. Later price changes on the
	// service never affect existing bookings.
	totalPrice := service.BasePrice * float64(req.DurationMinutes) / constant.MinutesPerHour

	booking, err := req.ToModel(username, totalPrice)
	if err != nil {
		return res, failure.BadRequestFromString("scheduled_date must be a valid RFC3339 timestamp")
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, constant.KafkaTopicBookingCreated, booking)
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	s.invalidateReports(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	target, err := model.ParseStatus(req.Status)
	if err != nil {
		return failure.BadRequest(err)
	}

	unlock := s.lockBooking(id)
	defer unlock()

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	// Setting the current status again is a no-op and does not touch the
	// modification stamps.
	if booking.Status == target {
		return nil
	}

	if !booking.Status.CanTransitionTo(target) {
		return failure.Conflict(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, target))
	}

	username := shared.UsernameFromContext(ctx)
	updatedFields := map[string]any{
		model.FieldStatus:        target.String(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = target
	s.publishEvent(ctx, constant.KafkaTopicBookingStatusChanged, booking)
	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Reschedule(ctx context.Context, req dto.RescheduleBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	scheduledDate, err := timezone.Parse(constant.DateFormat, req.ScheduledDate)
	if err != nil {
		return failure.BadRequestFromString("scheduled_date must be a valid RFC3339 timestamp")
	}

	unlock := s.lockBooking(id)
	defer unlock()

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusPending {
		return failure.Conflict(fmt.Sprintf("cannot reschedule a %s booking", booking.Status))
	}

	username := shared.UsernameFromContext(ctx)
	updatedFields := map[string]any{
		model.FieldScheduledDate: scheduledDate,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reschedule booking")

		return fmt.Errorf("failed to reschedule booking: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateNotes(ctx context.Context, req dto.UpdateNotesRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateNotes")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock := s.lockBooking(id)
	defer unlock()

	// Notes are mutable in every status, including terminal ones.
	if _, err = s.getBooking(ctx, id); err != nil {
		return err
	}

	username := shared.UsernameFromContext(ctx)
	updatedFields := map[string]any{
		model.FieldNotes:         req.Notes,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking notes")

		return fmt.Errorf("failed to update booking notes: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) AddReview(ctx context.Context, req dto.AddReviewRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddReview")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock := s.lockBooking(id)
	defer unlock()

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusCompleted {
		return failure.Conflict(fmt.Sprintf("cannot review a %s booking", booking.Status))
	}

	if booking.Reviewed() {
		return failure.Conflict("booking has already been reviewed")
	}

	username := shared.UsernameFromContext(ctx)
	updatedFields := map[string]any{
		model.FieldRating:        req.Rating,
		model.FieldReview:        req.Review,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to add booking review")

		return fmt.Errorf("failed to add booking review: %w", err)
	}

	booking.Rating = &req.Rating
	booking.Review = &req.Review
	s.publishEvent(ctx, constant.KafkaTopicBookingReviewed, booking)
	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

// publishEvent emits a lifecycle event. Delivery problems are logged and do
// not fail the booking operation.
func (s *serviceImpl) publishEvent(ctx context.Context, topic string, booking model.Booking) {
	event := kafka.Message{
		Key:   booking.ID,
		Value: dto.NewBookingEvent(booking),
	}

	if err := s.kafka.SendMessages(ctx, topic, event); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	s.invalidateReports(ctx)
}

// invalidateReports drops every cached analytics report. Reports are reduced
// from booking rows, so any booking change makes them stale.
func (s *serviceImpl) invalidateReports(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixCleanerReport)
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixHomeOwnerReport)
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixPlatformReport)
}
