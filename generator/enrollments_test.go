package generator

import (
	"testing"

	"edugen/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentsUniquePairsAndReferences(t *testing.T) {
	tables := generateTestTables(t)
	require.NotEmpty(t, tables.Enrollments)

	students := make(map[uint]bool)
	for _, u := range tables.Users {
		if u.Role == "USER" {
			students[u.ID] = true
		}
	}
	accepted := make(map[uint]bool)
	for _, c := range tables.Courses {
		if c.Status == "ACCEPTED" {
			accepted[c.ID] = true
		}
	}

	seen := make(map[pairKey]bool)
	for i, e := range tables.Enrollments {
		assert.Equal(t, uint(i+1), e.ID, "enrollment ids must be sequential")
		assert.True(t, students[e.UserID], "enrollment %d references non-student %d", e.ID, e.UserID)
		assert.True(t, accepted[e.CourseID], "enrollment %d references non-accepted course %d", e.ID, e.CourseID)

		key := pairKey{e.UserID, e.CourseID}
		assert.False(t, seen[key], "duplicate enrollment pair (%d,%d)", e.UserID, e.CourseID)
		seen[key] = true

		assert.False(t, e.EnrolledAt.After(testNow))
		assert.False(t, e.EnrolledAt.Before(testNow.AddDate(0, -12, 0)))
	}
}

func TestEnrollmentsZeroTarget(t *testing.T) {
	cfg := testConfig()
	cfg.NumEnrollments = 0
	g := New(cfg, testNow)

	enrollments, err := g.Enrollments(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestEnrollmentsEmptyPools(t *testing.T) {
	g := New(testConfig(), testNow)

	_, err := g.Enrollments(
		[]models.User{{ID: 1, Role: "INSTRUCTOR"}},
		[]models.Course{{ID: 1, Status: "PENDING"}},
	)
	require.Error(t, err)
}

func TestEnrollmentsStopOnExhaustedPairs(t *testing.T) {
	cfg := testConfig()
	cfg.NumEnrollments = 100
	g := New(cfg, testNow)

	// Only 2 students x 1 accepted course = 2 possible pairs.
	users := []models.User{
		{ID: 1, Role: "USER"},
		{ID: 2, Role: "USER"},
	}
	courses := []models.Course{{ID: 1, Status: "ACCEPTED"}}

	enrollments, err := g.Enrollments(users, courses)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(enrollments), 2)
}
