package userapimodels

import (
	dbmodels "careerhub-backend/models/db"
)

type UserView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Telegram    string `json:"telegram,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Company     string `json:"company,omitempty"`
	AvatarURL   string `json:"avatar,omitempty"`
	IsAdmin     bool   `json:"is_admin"`
	IsActive    bool   `json:"is_active"`
}

type UserUpdateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Telegram    *string `json:"telegram"`
	PhoneNumber *string `json:"phone_number"`
	Company     *string `json:"company"`
	AvatarURL   *string `json:"avatar"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Telegram:    rec.Telegram,
		PhoneNumber: rec.PhoneNumber,
		Company:     rec.Company,
		AvatarURL:   rec.AvatarURL,
		IsAdmin:     rec.IsAdmin,
		IsActive:    rec.IsActive,
	}
}
