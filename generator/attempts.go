package generator

import (
	"log"

	"edugen/models"
)

// QuizAttempts rejection-samples attempts: draw a quiz uniformly, then an
// owner from the users enrolled in the quiz's course. Draws landing on a quiz
// without enrolled users are discarded against a bounded retry budget, so the
// produced count can fall short of the target; shortfalls are logged.
func (g *Generator) QuizAttempts(quizzes []models.Quiz, enrollments []models.Enrollment) []models.QuizAttempt {
	target := g.cfg.NumQuizAttempts
	if target == 0 || len(quizzes) == 0 {
		return []models.QuizAttempt{}
	}

	enrolledByCourse := make(map[uint][]uint)
	for _, e := range enrollments {
		enrolledByCourse[e.CourseID] = append(enrolledByCourse[e.CourseID], e.UserID)
	}

	attempts := make([]models.QuizAttempt, 0, target)
	budget := target * 10

	for draws := 0; len(attempts) < target && draws < budget; draws++ {
		quiz := quizzes[g.rng.Intn(len(quizzes))]
		enrolled := enrolledByCourse[quiz.CourseID]
		if len(enrolled) == 0 {
			continue
		}

		// Scores cluster around 75% with a 15-point spread.
		percentage := int(g.rng.NormFloat64()*15 + 75)
		if percentage < 0 {
			percentage = 0
		}
		if percentage > 100 {
			percentage = 100
		}
		totalQuestions := 5 + g.rng.Intn(16)

		attempts = append(attempts, models.QuizAttempt{
			ID:             uint(len(attempts) + 1),
			QuizID:         quiz.ID,
			UserID:         enrolled[g.rng.Intn(len(enrolled))],
			Score:          percentage * totalQuestions / 100,
			TotalQuestions: totalQuestions,
			Percentage:     percentage,
			AttemptedAt:    g.daysAfter(quiz.CreatedAt, 0, 180),
		})
	}

	if len(attempts) < target {
		log.Printf("quiz attempts: produced %d of %d requested (quizzes without enrollments skipped)",
			len(attempts), target)
	}
	return attempts
}
