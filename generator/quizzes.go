package generator

import (
	"fmt"

	"edugen/models"
)

// Quizzes generates 1-5 quizzes for every ACCEPTED course, authored by the
// course instructor within 30 days of course creation.
func (g *Generator) Quizzes(courses []models.Course) []models.Quiz {
	var quizzes []models.Quiz

	for _, c := range courses {
		if c.Status != "ACCEPTED" {
			continue
		}
		count := 1 + g.rng.Intn(5)
		for q := 1; q <= count; q++ {
			quizzes = append(quizzes, models.Quiz{
				ID:          uint(len(quizzes) + 1),
				Title:       fmt.Sprintf("%s - Quiz %d", c.Title, q),
				Description: fmt.Sprintf("Assessment quiz for %s", c.Title),
				CourseID:    c.ID,
				CreatedBy:   c.InstructorID,
				CreatedAt:   g.daysAfter(c.CreatedAt, 1, 30),
			})
		}
	}
	return quizzes
}
