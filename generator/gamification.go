package generator

import "edugen/models"

// Gamification builds one stats row per student. Points are derived from that
// user's progress rows: 100 per completed course plus half of the summed
// progress percentages.
func (g *Generator) Gamification(users []models.User, progress []models.Progress) []models.UserGamification {
	completedByUser := make(map[uint]int)
	progressSumByUser := make(map[uint]int)
	for _, p := range progress {
		if p.IsCompleted {
			completedByUser[p.UserID]++
		}
		progressSumByUser[p.UserID] += p.ProgressPercentage
	}

	var stats []models.UserGamification
	for _, u := range users {
		if u.Role != "USER" {
			continue
		}
		current := g.poisson(7)
		longest := g.poisson(15)
		if longest < current {
			longest = current
		}
		stats = append(stats, models.UserGamification{
			UserID:              u.ID,
			TotalPoints:         completedByUser[u.ID]*100 + progressSumByUser[u.ID]/2,
			CurrentLoginStreak:  current,
			LongestLoginStreak:  longest,
			CurrentCourseStreak: g.rng.Intn(6),
			CurrentQuizStreak:   g.rng.Intn(11),
			StreakFreezeTokens:  g.rng.Intn(4),
		})
	}
	return stats
}
