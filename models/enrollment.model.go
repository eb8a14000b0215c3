package models

import "time"

type Enrollment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null" validate:"required"`
	CourseID   uint      `json:"course_id" gorm:"index;not null" validate:"required"`
	EnrolledAt time.Time `json:"enrolled_at"`
	IsPaid     bool      `json:"is_paid" gorm:"default:false"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
