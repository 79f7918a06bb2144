package models

import (
	"time"

	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
)

type RegisterUserParams struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     *string `json:"name"`
	Role     string  `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

type UserLoginParams struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserParams struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

type ChangeRoleParams struct {
	Role string `json:"role" binding:"required,oneof=USER ADMIN"`
}

type UserSummary struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  string  `json:"role"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserWithToken struct {
	AccessToken string      `json:"accessToken"`
	User        UserSummary `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToUserSummary(u *db.User) UserSummary {
	return UserSummary{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  nullableName(u),
		Role:  u.Role,
	}
}

func ToUserResponse(u *db.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      nullableName(u),
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponses(users []db.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

func nullableName(u *db.User) *string {
	if !u.Name.Valid {
		return nil
	}
	name := u.Name.String
	return &name
}
