package dto

import (
	"cleanmatch/internal/domains/user/model"
	"cleanmatch/shared"
	gDto "cleanmatch/shared/dto"
)

type UpdateProfileRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	Address  string `db:"address"   json:"address"   validate:"omitempty,max=255"`
	Bio      string `db:"bio"       json:"bio"       validate:"omitempty,max=2000"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Active   bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Address = model.Address
	r.Bio = model.Bio
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
