package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"edugen/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var artifactNames = []string{
	"course_categories.csv", "users.csv", "courses.csv", "enrollments.csv",
	"progress.csv", "quizzes.csv", "quiz_attempts.csv", "user_interactions.csv",
	"user_gamification.csv", "ml_dataset.csv",
}

func TestWriteAllArtifacts(t *testing.T) {
	tables, err := generator.New(testConfig(), testNow).GenerateAll()
	require.NoError(t, err)
	ml := Assemble(tables)

	dir := t.TempDir()
	require.NoError(t, WriteAll(dir, tables, ml))

	for _, name := range artifactNames {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing artifact %s", name)
	}

	file, err := os.Open(filepath.Join(dir, "users.csv"))
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(tables.Users)+1)
	assert.Equal(t, []string{"id", "name", "email", "role", "status", "email_verified", "created_at", "updated_at"}, records[0])
}

func TestWriteAllDeterministic(t *testing.T) {
	firstDir := t.TempDir()
	secondDir := t.TempDir()

	for _, dir := range []string{firstDir, secondDir} {
		tables, err := generator.New(testConfig(), testNow).GenerateAll()
		require.NoError(t, err)
		require.NoError(t, WriteAll(dir, tables, Assemble(tables)))
	}

	for _, name := range artifactNames {
		first, err := os.ReadFile(filepath.Join(firstDir, name))
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(secondDir, name))
		require.NoError(t, err)
		assert.Equal(t, first, second, "artifact %s differs between identical runs", name)
	}
}

func TestWriteAllEmptyTables(t *testing.T) {
	cfg := testConfig()
	cfg.NumEnrollments = 0
	cfg.NumQuizAttempts = 0

	tables, err := generator.New(cfg, testNow).GenerateAll()
	require.NoError(t, err)
	ml := Assemble(tables)
	require.Empty(t, ml)

	dir := t.TempDir()
	require.NoError(t, WriteAll(dir, tables, ml))

	file, err := os.Open(filepath.Join(dir, "ml_dataset.csv"))
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "empty ml_dataset should carry only its header")
}
