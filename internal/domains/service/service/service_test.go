package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cleanmatch/config"
	"cleanmatch/infras/otel/mocks"
	categoryMocks "cleanmatch/internal/domains/category/mocks"
	serviceMocks "cleanmatch/internal/domains/service/mocks"
	"cleanmatch/internal/domains/service/model"
	"cleanmatch/internal/domains/service/model/dto"
	"cleanmatch/internal/domains/service/service"
	cacheMocks "cleanmatch/shared/cache/mocks"
	"cleanmatch/shared/failure"
	gModel "cleanmatch/shared/model"
	"cleanmatch/shared/timezone"
)

func newService(ctrl *gomock.Controller) (service.Service, *serviceMocks.MockService, *categoryMocks.MockCategory, *cacheMocks.MockRedisCache) {
	mockRepo := serviceMocks.NewMockService(ctrl)
	mockCategoryRepo := categoryMocks.NewMockCategory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCategoryRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCategoryRepo, mockCache
}

func standardCleaningService() model.Service {
	return model.Service{
		ID:          "service-1",
		CategoryID:  "category-1",
		Name:        "Standard Cleaning",
		Description: "Weekly surface cleaning",
		BasePrice:   40,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin-1",
			ModifiedBy: "admin-1",
		},
	}
}

func TestServiceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCategoryRepo, mockCache := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateServiceRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateServiceRequest{CategoryID: "category-1", Name: "Standard Cleaning", BasePrice: 40},
			setupMock: func() {
				mockCategoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, svc model.Service) error {
						assert.NotEmpty(t, svc.ID)
						assert.Equal(t, "Standard Cleaning", svc.Name)
						assert.True(t, svc.Active)
						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown category rejected",
			req:  dto.CreateServiceRequest{CategoryID: "missing", Name: "Standard Cleaning", BasePrice: 40},
			setupMock: func() {
				mockCategoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.CreateServiceRequest{CategoryID: "category-1", Name: "Standard Cleaning", BasePrice: 40},
			setupMock: func() {
				mockCategoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss falls through to repository",
			id:   "service-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardCleaningService(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "service not found",
			id:   "missing",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Service{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Standard Cleaning", res.Name)
				assert.Equal(t, 40.0, res.BasePrice)
			}
		})
	}
}

func TestServiceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCategoryRepo, mockCache := newService(ctrl)

	basePrice := 55.0
	inactive := false

	tests := []struct {
		name      string
		req       dto.UpdateServiceRequest
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful price update",
			req:  dto.UpdateServiceRequest{BasePrice: &basePrice},
			id:   "service-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, &basePrice, fields[model.FieldBasePrice])
						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "deactivation",
			req:  dto.UpdateServiceRequest{Active: &inactive},
			id:   "service-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, &inactive, fields[model.FieldActive])
						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "move to unknown category rejected",
			req:  dto.UpdateServiceRequest{CategoryID: "missing"},
			id:   "service-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCategoryRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "empty request rejected",
			req:       dto.UpdateServiceRequest{},
			id:        "service-1",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "service not found",
			req:  dto.UpdateServiceRequest{BasePrice: &basePrice},
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			id:   "service-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "service not found",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
