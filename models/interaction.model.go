package models

import "time"

// UserInteraction is implicit-feedback data, one row per enrollment.
type UserInteraction struct {
	UserID           uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	CourseID         uint      `json:"course_id" gorm:"primaryKey;autoIncrement:false"`
	TimeSpentMinutes int       `json:"time_spent_minutes" validate:"min=0"`
	NumSessions      int       `json:"num_sessions" validate:"min=1"`
	ImplicitRating   int       `json:"implicit_rating" gorm:"check:implicit_rating >= 1 AND implicit_rating <= 5" validate:"min=1,max=5"`
	LastInteraction  time.Time `json:"last_interaction"`
}

func (UserInteraction) TableName() string {
	return "user_interactions"
}
