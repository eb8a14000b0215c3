package models

import "time"

type Course struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" gorm:"type:text;default:''"`
	InstructorID uint      `json:"instructor_id" gorm:"index;not null" validate:"required"`
	CategoryID   uint      `json:"category_id" gorm:"index;not null" validate:"min=1,max=10"`
	Status       string    `json:"status" gorm:"default:'PENDING'" validate:"oneof=ACCEPTED PENDING DECLINED"`
	Visibility   string    `json:"visibility" gorm:"default:'PUBLIC'" validate:"oneof=PUBLIC PRIVATE"`
	Price        float64   `json:"price" validate:"gte=0"`
	IsFree       bool      `json:"is_free" gorm:"default:false"`
	ThumbnailURL string    `json:"thumbnail_url" gorm:"default:''"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" validate:"gtefield=CreatedAt"`
}

func (Course) TableName() string {
	return "courses"
}
