package generator

import (
	"fmt"

	"edugen/models"
)

// Progress emits one row per enrollment, reusing the enrollment id. Lifecycle
// buckets are assigned by nested splits: 15% never started, then 25% of the
// remainder dropped out early, then 35% are in progress, and the rest
// completed the course.
func (g *Generator) Progress(enrollments []models.Enrollment) []models.Progress {
	progress := make([]models.Progress, 0, len(enrollments))

	for _, e := range enrollments {
		p := models.Progress{
			ID:       e.ID,
			UserID:   e.UserID,
			CourseID: e.CourseID,
		}
		switch {
		case g.chance(0.15):
			// never started, percentage stays 0
		case g.chance(0.25):
			p.ProgressPercentage = 5 + g.rng.Intn(26)
		case g.chance(0.35):
			p.ProgressPercentage = 31 + g.rng.Intn(69)
		default:
			p.ProgressPercentage = 100
			p.IsCompleted = true
			completed := g.daysAfter(e.EnrolledAt, 7, 90)
			p.CompletedAt = &completed
			p.CertificateURL = fmt.Sprintf("/certificates/user_%d_course_%d.pdf", e.UserID, e.CourseID)
		}
		p.LastAccessed = g.daysAfter(e.EnrolledAt, 0, 30)
		progress = append(progress, p)
	}
	return progress
}
