package generator

import (
	"fmt"
	"log"

	"edugen/models"
)

type pairKey struct {
	userID   uint
	courseID uint
}

// Enrollments samples (student, accepted course) pairs until the target count
// is reached or the retry budget runs out. Duplicate pairs are skipped via a
// set lookup, so the produced count can fall short of the target; shortfalls
// are logged, not silent.
func (g *Generator) Enrollments(users []models.User, courses []models.Course) ([]models.Enrollment, error) {
	target := g.cfg.NumEnrollments
	if target == 0 {
		return []models.Enrollment{}, nil
	}

	var students []uint
	for _, u := range users {
		if u.Role == "USER" {
			students = append(students, u.ID)
		}
	}
	var accepted []uint
	for _, c := range courses {
		if c.Status == "ACCEPTED" {
			accepted = append(accepted, c.ID)
		}
	}
	if len(students) == 0 || len(accepted) == 0 {
		return nil, fmt.Errorf("cannot generate %d enrollments: %d students, %d accepted courses",
			target, len(students), len(accepted))
	}

	seen := make(map[pairKey]struct{}, target)
	enrollments := make([]models.Enrollment, 0, target)
	budget := target * 10

	for draws := 0; len(enrollments) < target && draws < budget; draws++ {
		key := pairKey{
			userID:   students[g.rng.Intn(len(students))],
			courseID: accepted[g.rng.Intn(len(accepted))],
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		enrollments = append(enrollments, models.Enrollment{
			ID:         uint(len(enrollments) + 1),
			UserID:     key.userID,
			CourseID:   key.courseID,
			EnrolledAt: g.timeBetween(g.now.AddDate(0, -12, 0), g.now),
			IsPaid:     g.chance(0.4),
		})
	}

	if len(enrollments) < target {
		log.Printf("enrollments: produced %d of %d requested (duplicate pairs exhausted the retry budget)",
			len(enrollments), target)
	}
	return enrollments, nil
}
