package generator

import (
	"errors"
	"fmt"
	"math"

	"edugen/models"
)

var ErrNoInstructors = errors.New("no instructors available to assign courses")

var (
	courseStatuses          = []string{"ACCEPTED", "PENDING", "DECLINED"}
	courseStatusWeights     = []float64{0.85, 0.1, 0.05}
	courseVisibilities      = []string{"PUBLIC", "PRIVATE"}
	courseVisibilityWeights = []float64{0.9, 0.1}
)

// Courses generates NumCourses courses. Titles come from the per-category
// template and subject tables; instructors are sampled uniformly from users
// with role INSTRUCTOR. An empty instructor pool is fatal.
func (g *Generator) Courses(users []models.User, categories []models.CourseCategory) ([]models.Course, error) {
	var instructors []uint
	for _, u := range users {
		if u.Role == "INSTRUCTOR" {
			instructors = append(instructors, u.ID)
		}
	}
	if g.cfg.NumCourses > 0 && len(instructors) == 0 {
		return nil, ErrNoInstructors
	}

	courses := make([]models.Course, 0, g.cfg.NumCourses)
	for i := 1; i <= g.cfg.NumCourses; i++ {
		category := categories[g.rng.Intn(len(categories))]
		subject := g.pick(courseSubjects[category.Name])
		title := fmt.Sprintf(g.pick(courseTemplates[category.Name]), subject)

		// 40% of courses are priced at zero; the is_free flag is sampled
		// independently and may disagree with the price.
		price := 0.0
		if g.chance(0.6) {
			price = math.Round(g.rng.Float64()*29999) / 100
		}

		created := g.timeBetween(g.now.AddDate(0, -18, 0), g.now)
		courses = append(courses, models.Course{
			ID:           uint(i),
			Title:        title,
			Description:  g.pick(courseDescriptions(subject)),
			InstructorID: instructors[g.rng.Intn(len(instructors))],
			CategoryID:   category.ID,
			Status:       g.weighted(courseStatuses, courseStatusWeights),
			Visibility:   g.weighted(courseVisibilities, courseVisibilityWeights),
			Price:        price,
			IsFree:       g.chance(0.4),
			ThumbnailURL: fmt.Sprintf("/thumbnails/course_%d.jpg", i),
			CreatedAt:    created,
			UpdatedAt:    g.daysAfter(created, 0, 60),
		})
	}
	return courses, nil
}
