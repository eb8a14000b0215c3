package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"edugen/generator"
)

const timeLayout = "2006-01-02 15:04:05"

// WriteAll writes every entity table plus the assembled training table as CSV
// files under dir. Files are named after their entity tables.
func WriteAll(dir string, t *generator.Tables, ml []MLRow) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name    string
		header  []string
		records [][]string
	}{
		{"course_categories.csv", []string{"id", "name", "description"}, categoryRecords(t)},
		{"users.csv", []string{"id", "name", "email", "role", "status", "email_verified", "created_at", "updated_at"}, userRecords(t)},
		{"courses.csv", []string{"id", "title", "description", "instructor_id", "category_id", "status", "visibility", "price", "is_free", "thumbnail_url", "created_at", "updated_at"}, courseRecords(t)},
		{"enrollments.csv", []string{"id", "user_id", "course_id", "enrolled_at", "is_paid"}, enrollmentRecords(t)},
		{"progress.csv", []string{"id", "user_id", "course_id", "progress_percentage", "is_completed", "certificate_url", "last_accessed", "completed_at"}, progressRecords(t)},
		{"quizzes.csv", []string{"id", "title", "description", "course_id", "created_by", "created_at"}, quizRecords(t)},
		{"quiz_attempts.csv", []string{"id", "quiz_id", "user_id", "score", "total_questions", "percentage", "attempted_at"}, attemptRecords(t)},
		{"user_interactions.csv", []string{"user_id", "course_id", "time_spent_minutes", "num_sessions", "implicit_rating", "last_interaction"}, interactionRecords(t)},
		{"user_gamification.csv", []string{"user_id", "total_points", "current_login_streak", "longest_login_streak", "current_course_streak", "current_quiz_streak", "streak_freeze_tokens"}, gamificationRecords(t)},
		{"ml_dataset.csv", mlHeader(), mlRecords(ml)},
	}

	for _, f := range files {
		if err := writeCSV(filepath.Join(dir, f.name), f.header, f.records); err != nil {
			return err
		}
	}
	return nil
}

// writeCSV writes header plus rows to path, failing on the first write error.
func writeCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", path, err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write rows of %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatUint(u uint) string {
	return strconv.FormatUint(uint64(u), 10)
}

func categoryRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		records = append(records, []string{formatUint(c.ID), c.Name, c.Description})
	}
	return records
}

func userRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.Users))
	for _, u := range t.Users {
		records = append(records, []string{
			formatUint(u.ID), u.Name, u.Email, u.Role, u.Status,
			formatBool(u.EmailVerified), formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
		})
	}
	return records
}

func courseRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.Courses))
	for _, c := range t.Courses {
		records = append(records, []string{
			formatUint(c.ID), c.Title, c.Description, formatUint(c.InstructorID),
			formatUint(c.CategoryID), c.Status, c.Visibility,
			strconv.FormatFloat(c.Price, 'f', 2, 64), formatBool(c.IsFree),
			c.ThumbnailURL, formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
		})
	}
	return records
}

func enrollmentRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.Enrollments))
	for _, e := range t.Enrollments {
		records = append(records, []string{
			formatUint(e.ID), formatUint(e.UserID), formatUint(e.CourseID),
			formatTime(e.EnrolledAt), formatBool(e.IsPaid),
		})
	}
	return records
}

func progressRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.Progress))
	for _, p := range t.Progress {
		records = append(records, []string{
			formatUint(p.ID), formatUint(p.UserID), formatUint(p.CourseID),
			strconv.Itoa(p.ProgressPercentage), formatBool(p.IsCompleted),
			p.CertificateURL, formatTime(p.LastAccessed), formatTimePtr(p.CompletedAt),
		})
	}
	return records
}

func quizRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.Quizzes))
	for _, q := range t.Quizzes {
		records = append(records, []string{
			formatUint(q.ID), q.Title, q.Description, formatUint(q.CourseID),
			formatUint(q.CreatedBy), formatTime(q.CreatedAt),
		})
	}
	return records
}

func attemptRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.QuizAttempts))
	for _, a := range t.QuizAttempts {
		records = append(records, []string{
			formatUint(a.ID), formatUint(a.QuizID), formatUint(a.UserID),
			strconv.Itoa(a.Score), strconv.Itoa(a.TotalQuestions),
			strconv.Itoa(a.Percentage), formatTime(a.AttemptedAt),
		})
	}
	return records
}

func interactionRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.Interactions))
	for _, i := range t.Interactions {
		records = append(records, []string{
			formatUint(i.UserID), formatUint(i.CourseID),
			strconv.Itoa(i.TimeSpentMinutes), strconv.Itoa(i.NumSessions),
			strconv.Itoa(i.ImplicitRating), formatTime(i.LastInteraction),
		})
	}
	return records
}

func gamificationRecords(t *generator.Tables) [][]string {
	records := make([][]string, 0, len(t.Gamification))
	for _, s := range t.Gamification {
		records = append(records, []string{
			formatUint(s.UserID), strconv.Itoa(s.TotalPoints),
			strconv.Itoa(s.CurrentLoginStreak), strconv.Itoa(s.LongestLoginStreak),
			strconv.Itoa(s.CurrentCourseStreak), strconv.Itoa(s.CurrentQuizStreak),
			strconv.Itoa(s.StreakFreezeTokens),
		})
	}
	return records
}

func mlHeader() []string {
	return []string{
		"id", "user_id", "course_id", "enrolled_at", "is_paid",
		"name", "email", "role", "status", "email_verified", "created_at", "updated_at",
		"title", "description", "instructor_id", "category_id", "status_course", "visibility",
		"price", "is_free", "thumbnail_url", "created_at_course", "updated_at_course",
		"progress_percentage", "is_completed", "certificate_url", "last_accessed", "completed_at",
		"time_spent_minutes", "num_sessions", "implicit_rating", "last_interaction",
		"name_category", "description_category",
	}
}

func mlRecords(rows []MLRow) [][]string {
	intPtr := func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			formatUint(r.EnrollmentID), formatUint(r.UserID), formatUint(r.CourseID),
			formatTime(r.EnrolledAt), formatBool(r.IsPaid),
			r.UserName, r.Email, r.Role, r.UserStatus, formatBool(r.EmailVerified),
			formatTime(r.UserCreatedAt), formatTime(r.UserUpdatedAt),
			r.Title, r.CourseDescription, formatUint(r.InstructorID), formatUint(r.CategoryID),
			r.CourseStatus, r.Visibility, strconv.FormatFloat(r.Price, 'f', 2, 64),
			formatBool(r.IsFree), r.ThumbnailURL,
			formatTime(r.CourseCreatedAt), formatTime(r.CourseUpdatedAt),
			strconv.Itoa(r.ProgressPercentage), formatBool(r.IsCompleted), r.CertificateURL,
			formatTime(r.LastAccessed), formatTimePtr(r.CompletedAt),
			intPtr(r.TimeSpentMinutes), intPtr(r.NumSessions), intPtr(r.ImplicitRating),
			formatTimePtr(r.LastInteraction),
			r.CategoryName, r.CategoryDescription,
		})
	}
	return records
}
