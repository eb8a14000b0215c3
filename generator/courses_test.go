package generator

import (
	"fmt"
	"testing"

	"edugen/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoursesReferences(t *testing.T) {
	tables := generateTestTables(t)

	instructors := make(map[uint]bool)
	for _, u := range tables.Users {
		if u.Role == "INSTRUCTOR" {
			instructors[u.ID] = true
		}
	}

	for _, c := range tables.Courses {
		assert.True(t, instructors[c.InstructorID], "course %d assigned to non-instructor %d", c.ID, c.InstructorID)
		assert.GreaterOrEqual(t, c.CategoryID, uint(1))
		assert.LessOrEqual(t, c.CategoryID, uint(10))
		assert.False(t, c.UpdatedAt.Before(c.CreatedAt), "course %d updated before created", c.ID)
		assert.GreaterOrEqual(t, c.Price, 0.0)
		assert.NotEmpty(t, c.Title)
		assert.Equal(t, fmt.Sprintf("/thumbnails/course_%d.jpg", c.ID), c.ThumbnailURL)
	}
}

func TestCoursesNoInstructors(t *testing.T) {
	g := New(testConfig(), testNow)

	students := []models.User{
		{ID: 1, Role: "USER"},
		{ID: 2, Role: "ADMIN"},
	}
	_, err := g.Courses(students, Categories())
	require.ErrorIs(t, err, ErrNoInstructors)
}

func TestCourseTemplateCoverage(t *testing.T) {
	for _, c := range Categories() {
		assert.NotEmpty(t, courseTemplates[c.Name], "no title templates for category %s", c.Name)
		assert.NotEmpty(t, courseSubjects[c.Name], "no subjects for category %s", c.Name)
	}
	assert.Len(t, Categories(), 10)
}

func TestInstructorWithoutCoursesIsValid(t *testing.T) {
	cfg := testConfig()
	cfg.NumCourses = 1
	cfg.NumEnrollments = 0
	cfg.NumQuizAttempts = 0
	tables, err := New(cfg, testNow).GenerateAll()
	require.NoError(t, err)

	assigned := make(map[uint]bool)
	for _, c := range tables.Courses {
		assigned[c.InstructorID] = true
	}
	idle := 0
	for _, u := range tables.Users {
		if u.Role == "INSTRUCTOR" && !assigned[u.ID] {
			idle++
		}
	}
	assert.Greater(t, idle, 0, "expected at least one instructor without courses")
}
