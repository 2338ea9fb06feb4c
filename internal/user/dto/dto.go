package dto

import (
	"time"

	"github.com/fekuna/omnipos-commerce/internal/model"
)

type RegisterInput struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=8,bcryptmax"`
	Name        string  `json:"name" validate:"required,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	CompanyName string  `json:"company_name" validate:"required,max=200"`
	OrgNumber   *string `json:"org_number" validate:"omitempty,max=50"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	PostalCode  *string `json:"postal_code" validate:"omitempty,max=20"`
	City        *string `json:"city" validate:"omitempty,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserFilters struct {
	Search     string
	IsApproved *bool
	Page       int
	PageSize   int
}

// AuthResult is returned by a successful login. The token is also set as a cookie.
type AuthResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}
