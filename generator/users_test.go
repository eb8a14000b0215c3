package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersEmailsUnique(t *testing.T) {
	users := New(testConfig(), testNow).Users()
	require.Len(t, users, 220)

	seen := make(map[string]bool, len(users))
	for _, u := range users {
		assert.NotEmpty(t, u.Email)
		assert.False(t, seen[u.Email], "duplicate email %s", u.Email)
		seen[u.Email] = true
	}
}

func TestUsersTimestamps(t *testing.T) {
	users := New(testConfig(), testNow).Users()

	windowStart := testNow.AddDate(-2, 0, 0)
	for _, u := range users {
		assert.False(t, u.UpdatedAt.Before(u.CreatedAt), "user %d updated before created", u.ID)
		assert.False(t, u.CreatedAt.Before(windowStart), "user %d created outside 2y window", u.ID)
		assert.False(t, u.CreatedAt.After(testNow), "user %d created in the future", u.ID)
	}
}

func TestUsersRoleDistribution(t *testing.T) {
	cfg := testConfig()
	cfg.NumUsers = 2000
	cfg.NumInstructors = 150
	users := New(cfg, testNow).Users()

	roles := make(map[string]int)
	for _, u := range users {
		roles[u.Role]++
	}

	total := float64(len(users))
	assert.InDelta(t, 0.85, float64(roles["USER"])/total, 0.05)
	assert.InDelta(t, 0.14, float64(roles["INSTRUCTOR"])/total, 0.05)
	assert.Less(t, float64(roles["ADMIN"])/total, 0.05)
}

func TestUsersDeterministic(t *testing.T) {
	first := New(testConfig(), testNow).Users()
	second := New(testConfig(), testNow).Users()
	require.Equal(t, first, second)
}
