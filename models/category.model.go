package models

type CourseCategory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"unique;not null" validate:"required"`
	Description string `json:"description" gorm:"type:text;default:''"`
}

func (CourseCategory) TableName() string {
	return "course_categories"
}
