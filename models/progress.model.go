package models

import "time"

// Progress shares its ID with the enrollment it belongs to.
type Progress struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	UserID             uint       `json:"user_id" gorm:"index;not null" validate:"required"`
	CourseID           uint       `json:"course_id" gorm:"index;not null" validate:"required"`
	ProgressPercentage int        `json:"progress_percentage" validate:"min=0,max=100"`
	IsCompleted        bool       `json:"is_completed" gorm:"default:false"`
	CertificateURL     string     `json:"certificate_url" gorm:"default:''"`
	LastAccessed       time.Time  `json:"last_accessed"`
	CompletedAt        *time.Time `json:"completed_at"`
}

func (Progress) TableName() string {
	return "progress"
}
