package dto

import (
	"elysian/internal/domains/user/model"
	"elysian/shared"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	gModel "elysian/shared/model"
	"elysian/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username string `json:"username"  validate:"required,min=3,max=50"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin manager staff"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleStaff
	}

	return model.User{
		ID:       uuid.NewString(),
		Username: r.Username,
		Password: hashedPassword,
		FullName: r.FullName,
		Role:     role,
		Lifecycle: gModel.Lifecycle{
			Lifecycle: gModel.LifecycleActive,
		},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateUserRequest struct {
	FullName  *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,max=200"`
	Role      *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=admin manager staff"`
	Lifecycle *string `db:"lifecycle" json:"lifecycle,omitempty" validate:"omitempty,oneof=active inactive"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	LastLogin *string `json:"last_login,omitempty"`
	Lifecycle string  `json:"lifecycle"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Username = mod.Username
	r.FullName = mod.FullName
	r.Role = mod.Role
	r.LastLogin = mod.LastLogin
	r.Lifecycle = mod.Lifecycle.Lifecycle
	r.Metadata.FromModel(mod.Metadata)
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
