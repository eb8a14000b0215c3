package models

// UserGamification holds points and streaks, one row per student.
type UserGamification struct {
	UserID              uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	TotalPoints         int  `json:"total_points" validate:"min=0"`
	CurrentLoginStreak  int  `json:"current_login_streak" validate:"min=0"`
	LongestLoginStreak  int  `json:"longest_login_streak" validate:"min=0,gtefield=CurrentLoginStreak"`
	CurrentCourseStreak int  `json:"current_course_streak" validate:"min=0,max=5"`
	CurrentQuizStreak   int  `json:"current_quiz_streak" validate:"min=0,max=10"`
	StreakFreezeTokens  int  `json:"streak_freeze_tokens" validate:"min=0,max=3"`
}

func (UserGamification) TableName() string {
	return "user_gamification"
}
