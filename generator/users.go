package generator

import (
	"fmt"
	"strings"

	"edugen/models"
)

var (
	userRoles         = []string{"USER", "INSTRUCTOR", "ADMIN"}
	userRoleWeights   = []float64{0.85, 0.14, 0.01}
	userStatuses      = []string{"ACTIVE", "PENDING", "BANNED"}
	userStatusWeights = []float64{0.92, 0.07, 0.01}
)

// Users generates the full user table, students and instructors together,
// ids 1..(NumUsers+NumInstructors). Roles are drawn from a weighted
// distribution rather than split by the two count targets.
func (g *Generator) Users() []models.User {
	total := g.cfg.NumUsers + g.cfg.NumInstructors
	users := make([]models.User, 0, total)
	seen := make(map[string]struct{}, total)

	for i := 1; i <= total; i++ {
		created := g.timeBetween(g.now.AddDate(-2, 0, 0), g.now)
		users = append(users, models.User{
			ID:            uint(i),
			Name:          g.faker.Name(),
			Email:         g.uniqueEmail(seen, uint(i)),
			Role:          g.weighted(userRoles, userRoleWeights),
			Status:        g.weighted(userStatuses, userStatusWeights),
			EmailVerified: g.chance(0.85),
			CreatedAt:     created,
			UpdatedAt:     g.daysAfter(created, 0, 30),
		})
	}
	return users
}

// uniqueEmail redraws on collision, falling back to an id-prefixed address
// after too many duplicate draws so the loop always terminates.
func (g *Generator) uniqueEmail(seen map[string]struct{}, id uint) string {
	for attempt := 0; attempt < 100; attempt++ {
		email := strings.ToLower(g.faker.Email())
		if _, dup := seen[email]; !dup {
			seen[email] = struct{}{}
			return email
		}
	}
	email := fmt.Sprintf("user%d.%s", id, strings.ToLower(g.faker.Email()))
	seen[email] = struct{}{}
	return email
}
