package settings

import (
	"testing"

	testingpkg "github.com/aristath/bazaar/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	db, cleanup := testingpkg.NewTestDB(t, "config")
	t.Cleanup(cleanup)
	return NewRepository(db.Conn(), zerolog.Nop())
}

func TestRepository_GetSet(t *testing.T) {
	repo := newTestRepository(t)

	value, err := repo.Get(KeyTheme)
	require.NoError(t, err)
	assert.Nil(t, value, "missing keys are not an error")

	desc := "colour scheme"
	require.NoError(t, repo.Set(KeyTheme, "light", &desc))
	require.NoError(t, repo.Set(KeyTheme, "dark", nil))

	value, err = repo.Get(KeyTheme)
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "dark", *value)

	var storedDesc string
	require.NoError(t, repo.db.QueryRow("SELECT description FROM settings WHERE key = ?", KeyTheme).Scan(&storedDesc))
	assert.Equal(t, "colour scheme", storedDesc, "nil description keeps the stored one")
}

func TestRepository_Bool(t *testing.T) {
	repo := newTestRepository(t)

	v, err := repo.GetBool(KeyDisclaimerAccepted, true)
	require.NoError(t, err)
	assert.True(t, v, "default when missing")

	require.NoError(t, repo.SetBool(KeyDisclaimerAccepted, false))
	v, err = repo.GetBool(KeyDisclaimerAccepted, true)
	require.NoError(t, err)
	assert.False(t, v)

	for _, truthy := range []string{"true", "1", "YES", "on"} {
		assert.True(t, ParseBool(truthy), truthy)
	}
	assert.False(t, ParseBool("nope"))
}

func TestRepository_GetByPrefix(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.SetBool(SIPKey("mf-0"), false))
	require.NoError(t, repo.SetBool(SIPKey("mf-3"), true))
	require.NoError(t, repo.Set(KeyTheme, "dark", nil))
	require.NoError(t, repo.Set("sipXactive:mf-9", "true", nil))

	sips, err := repo.GetByPrefix(SIPKeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"mf-0": "false", "mf-3": "true"}, sips, "underscore in the prefix is matched literally")

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Set(KeyActiveTab, "mf", nil))
	require.NoError(t, repo.Delete(KeyActiveTab))
	require.NoError(t, repo.Delete(KeyActiveTab))

	value, err := repo.Get(KeyActiveTab)
	require.NoError(t, err)
	assert.Nil(t, value)
}
