package models

import "time"

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"default:''" validate:"required"`
	Email         string    `json:"email" gorm:"unique;not null" validate:"required,email"`
	Role          string    `json:"role" gorm:"default:'USER'" validate:"oneof=USER INSTRUCTOR ADMIN"`
	Status        string    `json:"status" gorm:"default:'ACTIVE'" validate:"oneof=ACTIVE PENDING BANNED"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" validate:"gtefield=CreatedAt"`
}

func (User) TableName() string {
	return "users"
}
