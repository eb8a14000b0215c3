package generator

import (
	"testing"
	"time"

	"edugen/config"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

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

func generateTestTables(t *testing.T) *Tables {
	t.Helper()
	tables, err := New(testConfig(), testNow).GenerateAll()
	require.NoError(t, err)
	return tables
}

func TestGenerateAllDeterministic(t *testing.T) {
	first, err := New(testConfig(), testNow).GenerateAll()
	require.NoError(t, err)

	second, err := New(testConfig(), testNow).GenerateAll()
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGenerateAllFullScale(t *testing.T) {
	cfg := testConfig()
	cfg.NumUsers = 2000
	cfg.NumInstructors = 150
	cfg.NumCourses = 800
	cfg.NumEnrollments = 12000
	cfg.NumQuizAttempts = 25000

	tables, err := New(cfg, testNow).GenerateAll()
	require.NoError(t, err)

	require.Len(t, tables.Users, 2150)
	for i, u := range tables.Users {
		require.Equal(t, uint(i+1), u.ID)
	}
	require.LessOrEqual(t, len(tables.Enrollments), 12000)
	require.Len(t, tables.Progress, len(tables.Enrollments))
	require.Len(t, tables.Interactions, len(tables.Enrollments))
}

func TestGenerateAllZeroEnrollments(t *testing.T) {
	cfg := testConfig()
	cfg.NumEnrollments = 0
	cfg.NumQuizAttempts = 0

	tables, err := New(cfg, testNow).GenerateAll()
	require.NoError(t, err)

	require.Empty(t, tables.Enrollments)
	require.Empty(t, tables.Progress)
	require.Empty(t, tables.Interactions)
	require.Empty(t, tables.QuizAttempts)
}
