package datasetValidator

import (
	"fmt"

	"edugen/generator"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateTables runs struct validation over every generated row before
// anything is persisted. The first violation aborts the run.
func ValidateTables(t *generator.Tables) error {
	for _, c := range t.Categories {
		if err := validate.Struct(c); err != nil {
			return fmt.Errorf("course_categories id=%d: %w", c.ID, err)
		}
	}
	for _, u := range t.Users {
		if err := validate.Struct(u); err != nil {
			return fmt.Errorf("users id=%d: %w", u.ID, err)
		}
	}
	for _, c := range t.Courses {
		if err := validate.Struct(c); err != nil {
			return fmt.Errorf("courses id=%d: %w", c.ID, err)
		}
	}
	for _, e := range t.Enrollments {
		if err := validate.Struct(e); err != nil {
			return fmt.Errorf("enrollments id=%d: %w", e.ID, err)
		}
	}
	for _, p := range t.Progress {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("progress id=%d: %w", p.ID, err)
		}
	}
	for _, q := range t.Quizzes {
		if err := validate.Struct(q); err != nil {
			return fmt.Errorf("quizzes id=%d: %w", q.ID, err)
		}
	}
	for _, a := range t.QuizAttempts {
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("quiz_attempts id=%d: %w", a.ID, err)
		}
	}
	for _, i := range t.Interactions {
		if err := validate.Struct(i); err != nil {
			return fmt.Errorf("user_interactions user=%d course=%d: %w", i.UserID, i.CourseID, err)
		}
	}
	for _, s := range t.Gamification {
		if err := validate.Struct(s); err != nil {
			return fmt.Errorf("user_gamification user=%d: %w", s.UserID, err)
		}
	}
	return nil
}
