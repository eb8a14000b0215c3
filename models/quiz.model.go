package models

import "time"

type Quiz struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" gorm:"type:text;default:''"`
	CourseID    uint      `json:"course_id" gorm:"index;not null" validate:"required"`
	CreatedBy   uint      `json:"created_by" gorm:"not null" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
