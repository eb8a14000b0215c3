package generator

import "edugen/models"

// Interactions emits one implicit-feedback row per enrollment. The rating tier
// is keyed off a freshly drawn progress value rather than the stored Progress
// row, matching the reference dataset's behavior.
func (g *Generator) Interactions(enrollments []models.Enrollment) []models.UserInteraction {
	interactions := make([]models.UserInteraction, 0, len(enrollments))

	for _, e := range enrollments {
		sessions := g.poisson(8)
		if sessions < 1 {
			sessions = 1
		}
		interactions = append(interactions, models.UserInteraction{
			UserID:           e.UserID,
			CourseID:         e.CourseID,
			TimeSpentMinutes: int(g.rng.ExpFloat64() * 120),
			NumSessions:      sessions,
			ImplicitRating:   g.implicitRating(g.rng.Intn(101)),
			LastInteraction:  g.daysAfter(e.EnrolledAt, 0, 60),
		})
	}
	return interactions
}

// implicitRating maps a progress percentage to a 1-5 satisfaction proxy.
func (g *Generator) implicitRating(progress int) int {
	switch {
	case progress >= 100:
		return g.weightedInt([]int{4, 5}, []float64{0.3, 0.7})
	case progress > 70:
		return g.weightedInt([]int{3, 4, 5}, []float64{0.2, 0.5, 0.3})
	case progress > 30:
		return g.weightedInt([]int{2, 3, 4}, []float64{0.3, 0.5, 0.2})
	default:
		return g.weightedInt([]int{1, 2, 3}, []float64{0.5, 0.3, 0.2})
	}
}
