package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"edugen/generator"

	"github.com/google/uuid"
)

const SummaryFileName = "dataset_summary.json"

// Summary describes one generation run. Requested counts sit next to produced
// counts so rejection-sampling shortfalls are visible to consumers.
type Summary struct {
	RunID            string         `json:"run_id"`
	GenerationDate   string         `json:"generation_date"`
	Datasets         map[string]int `json:"datasets"`
	Requested        map[string]int `json:"requested"`
	UserRoles        map[string]int `json:"user_roles"`
	CourseCategories map[string]int `json:"course_categories"`
	CompletionRate   string         `json:"completion_rate"`
}

// BuildSummary computes counts and distribution snapshots for a finished run.
func BuildSummary(t *generator.Tables, ml []MLRow, generatedAt time.Time) Summary {
	roles := make(map[string]int)
	for _, u := range t.Users {
		roles[u.Role]++
	}

	categoryNames := make(map[uint]string, len(t.Categories))
	for _, c := range t.Categories {
		categoryNames[c.ID] = c.Name
	}
	categories := make(map[string]int)
	for _, c := range t.Courses {
		categories[categoryNames[c.CategoryID]]++
	}

	completed := 0
	for _, p := range t.Progress {
		if p.IsCompleted {
			completed++
		}
	}
	completionRate := "0.0%"
	if len(t.Progress) > 0 {
		completionRate = fmt.Sprintf("%.1f%%", float64(completed)/float64(len(t.Progress))*100)
	}

	return Summary{
		RunID:          uuid.NewString(),
		GenerationDate: generatedAt.UTC().Format(time.RFC3339),
		Datasets: map[string]int{
			"course_categories": len(t.Categories),
			"users":             len(t.Users),
			"courses":           len(t.Courses),
			"enrollments":       len(t.Enrollments),
			"progress":          len(t.Progress),
			"quizzes":           len(t.Quizzes),
			"quiz_attempts":     len(t.QuizAttempts),
			"user_interactions": len(t.Interactions),
			"user_gamification": len(t.Gamification),
			"ml_dataset":        len(ml),
		},
		Requested: map[string]int{
			"enrollments":   t.RequestedEnrollments,
			"quiz_attempts": t.RequestedAttempts,
		},
		UserRoles:        roles,
		CourseCategories: categories,
		CompletionRate:   completionRate,
	}
}

// WriteSummary writes the summary as indented JSON next to the CSV tables.
func WriteSummary(dir string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	path := filepath.Join(dir, SummaryFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
