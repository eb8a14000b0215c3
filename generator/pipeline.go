package generator

import "edugen/models"

// Tables holds every entity table produced by one generation run. Tables are
// written once and never mutated afterwards.
type Tables struct {
	Categories   []models.CourseCategory
	Users        []models.User
	Courses      []models.Course
	Enrollments  []models.Enrollment
	Progress     []models.Progress
	Quizzes      []models.Quiz
	QuizAttempts []models.QuizAttempt
	Interactions []models.UserInteraction
	Gamification []models.UserGamification

	// Requested counts for the rejection-sampled tables, kept for the
	// generation summary so shortfalls are visible downstream.
	RequestedEnrollments int
	RequestedAttempts    int
}

// GenerateAll runs every entity generator in dependency order:
// catalog, users, courses, enrollments, progress, quizzes, attempts,
// interactions, gamification.
func (g *Generator) GenerateAll() (*Tables, error) {
	t := &Tables{
		Categories:           Categories(),
		RequestedEnrollments: g.cfg.NumEnrollments,
		RequestedAttempts:    g.cfg.NumQuizAttempts,
	}

	t.Users = g.Users()

	courses, err := g.Courses(t.Users, t.Categories)
	if err != nil {
		return nil, err
	}
	t.Courses = courses

	enrollments, err := g.Enrollments(t.Users, t.Courses)
	if err != nil {
		return nil, err
	}
	t.Enrollments = enrollments

	t.Progress = g.Progress(t.Enrollments)
	t.Quizzes = g.Quizzes(t.Courses)
	t.QuizAttempts = g.QuizAttempts(t.Quizzes, t.Enrollments)
	t.Interactions = g.Interactions(t.Enrollments)
	t.Gamification = g.Gamification(t.Users, t.Progress)

	return t, nil
}
