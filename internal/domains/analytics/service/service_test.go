package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cleanmatch/config"
	kafkaMocks "cleanmatch/infras/kafka/mocks"
	"cleanmatch/infras/otel/mocks"
	"cleanmatch/internal/domains/analytics/model/dto"
	"cleanmatch/internal/domains/analytics/service"
	bookingMocks "cleanmatch/internal/domains/booking/mocks"
	bookingModel "cleanmatch/internal/domains/booking/model"
	bookingDto "cleanmatch/internal/domains/booking/model/dto"
	bookingService "cleanmatch/internal/domains/booking/service"
	serviceMocks "cleanmatch/internal/domains/service/mocks"
	userMocks "cleanmatch/internal/domains/user/mocks"
	userModel "cleanmatch/internal/domains/user/model"
	"cleanmatch/shared/cache"
	cacheMocks "cleanmatch/shared/cache/mocks"
	"cleanmatch/shared/constant"
	"cleanmatch/shared/failure"
)

// memoryCache is a map-backed RedisCache so cross-service invalidation can be
// observed for real instead of through call expectations.
type memoryCache struct {
	entries map[string]json.RawMessage
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]json.RawMessage)}
}

func (c *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.entries[key] = data

	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, value any) error {
	data, ok := c.entries[key]
	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(data, value)
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)

	return nil
}

func (c *memoryCache) Clear(_ context.Context, prefix string) error {
	prefix = strings.TrimSuffix(prefix, constant.Asterix)

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}

	return nil
}

func newService(ctrl *gomock.Controller) (service.Analytics, *bookingMocks.MockBooking, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBookingRepo, mockUserRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockBookingRepo, mockUserRepo, mockCache
}

func intPtr(v int) *int {
	return &v
}

func TestAnalyticsService_CleanerReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookingRepo, mockUserRepo, mockCache := newService(ctrl)

	cleaner := userModel.User{ID: "cleaner-1", Role: constant.RoleCleaner, Active: true}

	t.Run("earnings only count completed bookings", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			{ID: "b1", Status: bookingModel.StatusCompleted, TotalPrice: 20, Rating: intPtr(4)},
			{ID: "b2", Status: bookingModel.StatusCancelled, TotalPrice: 0},
			{ID: "b3", Status: bookingModel.StatusCompleted, TotalPrice: 50, Rating: intPtr(5)},
		}

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cleaner, nil)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookings, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.CleanerReport(context.Background(), "cleaner-1", dto.DateRange{})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalBookings)
		assert.Equal(t, 2, res.CompletedBookings)
		assert.Equal(t, 1, res.CancelledBookings)
		assert.InDelta(t, 70.0, res.TotalEarnings, 0.0001)
		assert.InDelta(t, 4.5, res.AverageRating, 0.0001)
		assert.Equal(t, 2, res.CountsByStatus["completed"])
		assert.Equal(t, 1, res.CountsByStatus["cancelled"])
		assert.Equal(t, 0, res.CountsByStatus["pending"])
	})

	t.Run("empty booking set yields zeros", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cleaner, nil)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.CleanerReport(context.Background(), "cleaner-1", dto.DateRange{})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalBookings)
		assert.Zero(t, res.TotalEarnings)
		assert.Zero(t, res.AverageRating)
	})

	t.Run("completed bookings without ratings keep average at zero", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			{ID: "b1", Status: bookingModel.StatusCompleted, TotalPrice: 60},
		}

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cleaner, nil)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookings, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.CleanerReport(context.Background(), "cleaner-1", dto.DateRange{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.CompletedBookings)
		assert.InDelta(t, 60.0, res.TotalEarnings, 0.0001)
		assert.Zero(t, res.AverageRating)
	})

	t.Run("single reviewed booking drives the full report", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			{ID: "b1", Status: bookingModel.StatusCompleted, TotalPrice: 60, Rating: intPtr(5)},
		}

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cleaner, nil)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookings, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.CleanerReport(context.Background(), "cleaner-1", dto.DateRange{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.CompletedBookings)
		assert.InDelta(t, 60.0, res.TotalEarnings, 0.0001)
		assert.InDelta(t, 5.0, res.AverageRating, 0.0001)
	})

	t.Run("deactivated cleaner keeps historical report", func(t *testing.T) {
		inactive := cleaner
		inactive.Active = false

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inactive, nil)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{ID: "b1", Status: bookingModel.StatusCompleted, TotalPrice: 35, Rating: intPtr(4)},
			}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.CleanerReport(context.Background(), "cleaner-1", dto.DateRange{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.CompletedBookings)
		assert.InDelta(t, 35.0, res.TotalEarnings, 0.0001)
	})

	t.Run("unknown cleaner", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.CleanerReport(context.Background(), "missing", dto.DateRange{})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAnalyticsService_ReportRefreshesAfterBookingMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockServiceRepo := serviceMocks.NewMockService(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	memCache := newMemoryCache()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	reports := service.New(mockBookingRepo, mockUserRepo, cfg, memCache, mocks.NewOtel())
	bookings := bookingService.New(mockBookingRepo, mockUserRepo, mockServiceRepo, cfg, memCache, mockKafka, mocks.NewOtel())

	cleaner := userModel.User{ID: "cleaner-1", Role: constant.RoleCleaner, Active: true}
	confirmed := bookingModel.Booking{
		ID:          "booking-1",
		CleanerID:   "cleaner-1",
		HomeOwnerID: "owner-1",
		ServiceID:   "service-1",
		Status:      bookingModel.StatusConfirmed,
		TotalPrice:  60,
	}

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(cleaner, nil).
		Times(2)

	mockBookingRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{confirmed}, nil)

	before, err := reports.CleanerReport(context.Background(), "cleaner-1", dto.DateRange{})

	assert.NoError(t, err)
	assert.Equal(t, 0, before.CompletedBookings)
	assert.Zero(t, before.TotalEarnings)

	// Completing the booking must drop the cached report, not just the
	// booking caches.
	mockBookingRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(confirmed, nil)

	mockBookingRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), constant.KafkaTopicBookingStatusChanged, gomock.Any()).
		Return(nil)

	err = bookings.UpdateStatus(context.Background(), bookingDto.UpdateStatusRequest{Status: "completed"}, "booking-1")
	assert.NoError(t, err)

	completed := confirmed
	completed.Status = bookingModel.StatusCompleted

	mockBookingRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{completed}, nil)

	after, err := reports.CleanerReport(context.Background(), "cleaner-1", dto.DateRange{})

	assert.NoError(t, err)
	assert.Equal(t, 1, after.CompletedBookings)
	assert.InDelta(t, 60.0, after.TotalEarnings, 0.0001)
}

func TestAnalyticsService_HomeOwnerReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookingRepo, mockUserRepo, mockCache := newService(ctrl)

	owner := userModel.User{ID: "owner-1", Role: constant.RoleHomeOwner, Active: true}

	bookings := []bookingModel.Booking{
		{ID: "b1", Status: bookingModel.StatusCompleted, TotalPrice: 45},
		{ID: "b2", Status: bookingModel.StatusPending, TotalPrice: 30},
		{ID: "b3", Status: bookingModel.StatusCancelled, TotalPrice: 30},
	}

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(owner, nil)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockBookingRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bookings, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.HomeOwnerReport(context.Background(), "owner-1", dto.DateRange{})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalBookings)
	assert.Equal(t, 1, res.CompletedBookings)
	assert.Equal(t, 1, res.CancelledBookings)
	assert.InDelta(t, 45.0, res.TotalSpent, 0.0001)
	assert.Equal(t, 1, res.CountsByStatus["pending"])
}

func TestAnalyticsService_PlatformReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookingRepo, _, mockCache := newService(ctrl)

	t.Run("average booking value over completed bookings", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			{ID: "b1", Status: bookingModel.StatusCompleted, TotalPrice: 40},
			{ID: "b2", Status: bookingModel.StatusCompleted, TotalPrice: 60},
			{ID: "b3", Status: bookingModel.StatusConfirmed, TotalPrice: 100},
		}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookings, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.PlatformReport(context.Background(), dto.DateRange{})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalBookings)
		assert.InDelta(t, 100.0, res.TotalRevenue, 0.0001)
		assert.InDelta(t, 50.0, res.AverageBookingValue, 0.0001)
	})

	t.Run("no completed bookings avoids division by zero", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "b1", Status: bookingModel.StatusPending, TotalPrice: 40}}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.PlatformReport(context.Background(), dto.DateRange{})

		assert.NoError(t, err)
		assert.Zero(t, res.TotalRevenue)
		assert.Zero(t, res.AverageBookingValue)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.PlatformReport(context.Background(), dto.DateRange{})

		assert.Error(t, err)
	})
}
