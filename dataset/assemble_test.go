package dataset

import (
	"testing"
	"time"

	"edugen/config"
	"edugen/generator"
	"edugen/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow    = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	enrolledAt = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

func testConfig() *config.Config {
	return &config.Config{
		Seed:            42,
		NumUsers:        200,
		NumInstructors:  20,
		NumCourses:      60,
		NumCategories:   10,
		NumEnrollments:  400,
		NumQuizAttempts: 500,
	}
}

func fixtureTables() *generator.Tables {
	completed := enrolledAt.AddDate(0, 0, 30)
	return &generator.Tables{
		Categories: []models.CourseCategory{
			{ID: 1, Name: "Programming", Description: "Programming and software development courses"},
		},
		Users: []models.User{
			{ID: 1, Name: "Ada Example", Email: "ada@example.com", Role: "INSTRUCTOR"},
			{ID: 2, Name: "Sam Example", Email: "sam@example.com", Role: "USER"},
		},
		Courses: []models.Course{
			{ID: 1, Title: "Introduction to Python", InstructorID: 1, CategoryID: 1, Status: "ACCEPTED", Price: 49.99},
		},
		Enrollments: []models.Enrollment{
			{ID: 1, UserID: 2, CourseID: 1, EnrolledAt: enrolledAt, IsPaid: true},
			{ID: 2, UserID: 2, CourseID: 99, EnrolledAt: enrolledAt}, // unknown course
			{ID: 3, UserID: 1, CourseID: 1, EnrolledAt: enrolledAt}, // no progress row
		},
		Progress: []models.Progress{
			{
				ID: 1, UserID: 2, CourseID: 1,
				ProgressPercentage: 100, IsCompleted: true,
				CertificateURL: "/certificates/user_2_course_1.pdf",
				LastAccessed:   enrolledAt, CompletedAt: &completed,
			},
		},
	}
}

func TestAssembleJoins(t *testing.T) {
	rows := Assemble(fixtureTables())

	// Enrollments without a matching course or progress row drop out.
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, uint(1), row.EnrollmentID)
	assert.Equal(t, "Sam Example", row.UserName)
	assert.Equal(t, "Introduction to Python", row.Title)
	assert.Equal(t, 49.99, row.Price)
	assert.Equal(t, 100, row.ProgressPercentage)
	assert.True(t, row.IsCompleted)
	assert.Equal(t, "Programming", row.CategoryName)

	// No interaction row: the left join leaves those columns empty.
	assert.Nil(t, row.TimeSpentMinutes)
	assert.Nil(t, row.NumSessions)
	assert.Nil(t, row.ImplicitRating)
	assert.Nil(t, row.LastInteraction)
}

func TestAssembleWithInteraction(t *testing.T) {
	tables := fixtureTables()
	tables.Interactions = []models.UserInteraction{
		{UserID: 2, CourseID: 1, TimeSpentMinutes: 95, NumSessions: 6, ImplicitRating: 5, LastInteraction: enrolledAt.AddDate(0, 0, 10)},
	}

	rows := Assemble(tables)
	require.Len(t, rows, 1)

	row := rows[0]
	require.NotNil(t, row.TimeSpentMinutes)
	assert.Equal(t, 95, *row.TimeSpentMinutes)
	require.NotNil(t, row.ImplicitRating)
	assert.Equal(t, 5, *row.ImplicitRating)
}

func TestAssembleGeneratedTables(t *testing.T) {
	tables, err := generator.New(testConfig(), testNow).GenerateAll()
	require.NoError(t, err)

	rows := Assemble(tables)

	// The generator emits a progress and interaction row per enrollment, so
	// every enrollment survives the joins.
	require.Len(t, rows, len(tables.Enrollments))
	for _, row := range rows {
		assert.NotNil(t, row.TimeSpentMinutes)
		assert.NotEmpty(t, row.CategoryName)
	}
}

func TestAssembleEmptyEnrollments(t *testing.T) {
	tables := fixtureTables()
	tables.Enrollments = nil

	assert.Empty(t, Assemble(tables))
}
