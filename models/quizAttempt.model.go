package models

import "time"

type QuizAttempt struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	QuizID         uint      `json:"quiz_id" gorm:"index;not null" validate:"required"`
	UserID         uint      `json:"user_id" gorm:"index;not null" validate:"required"`
	Score          int       `json:"score" validate:"min=0,ltefield=TotalQuestions"`
	TotalQuestions int       `json:"total_questions" validate:"min=5,max=20"`
	Percentage     int       `json:"percentage" validate:"min=0,max=100"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
