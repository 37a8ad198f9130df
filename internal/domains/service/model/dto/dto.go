package dto

import (
	"cleanmatch/internal/domains/service/model"
	"cleanmatch/shared"
	gDto "cleanmatch/shared/dto"
	gModel "cleanmatch/shared/model"
	"cleanmatch/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	CategoryID  string  `json:"category_id" validate:"required"`
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	BasePrice   float64 `json:"base_price"  validate:"required,gt=0"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	return model.Service{
		ID:          uuid.NewString(),
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		BasePrice:   c.BasePrice,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	CategoryID  string   `db:"category_id" json:"category_id" validate:"omitempty"`
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=2000"`
	BasePrice   *float64 `db:"base_price"  json:"base_price"  validate:"omitempty,gt=0"`
	Active      *bool    `db:"active"      json:"active"      validate:"omitempty"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.CategoryID = model.CategoryID
	r.Name = model.Name
	r.Description = model.Description
	r.BasePrice = model.BasePrice
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
