package portfolio

import (
	"testing"

	"github.com/aristath/bazaar/internal/domain"
	testingpkg "github.com/aristath/bazaar/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *HoldingRepository {
	db, cleanup := testingpkg.NewTestDB(t, "portfolio")
	t.Cleanup(cleanup)
	return NewHoldingRepository(db.Conn(), zerolog.Nop())
}

func TestHoldingRepository_UpsertAndList(t *testing.T) {
	repo := newTestRepo(t)

	saved, err := repo.Upsert("alice", []Holding{
		{Symbol: " tcs ", CompanyName: "Tata Consultancy Services Limited", Exchange: "NSE", Sector: "IT", Quantity: 10, AvgBuyPrice: 3500},
		{Symbol: "INFY", Quantity: 4, AvgBuyPrice: 1500},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "TCS", saved[0].Symbol)
	assert.NotEmpty(t, saved[0].ID)
	assert.Equal(t, "General", saved[1].Sector)
	assert.Equal(t, "INFY", saved[1].CompanyName)

	list, err := repo.List("alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].UserID)

	others, err := repo.List("bob")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestHoldingRepository_UpsertReplacesSameSymbol(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.Upsert("alice", []Holding{{Symbol: "TCS", Quantity: 10, AvgBuyPrice: 3500}})
	require.NoError(t, err)
	second, err := repo.Upsert("alice", []Holding{{Symbol: "TCS", Quantity: 25, AvgBuyPrice: 3600}})
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID, "replacing keeps the original id")

	list, err := repo.List("alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 25.0, list[0].Quantity)
	assert.Equal(t, 3600.0, list[0].AvgBuyPrice)
}

func TestHoldingRepository_UpsertValidates(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Upsert("alice", []Holding{
		{Symbol: "TCS", Quantity: 10, AvgBuyPrice: 3500},
		{Symbol: "BAD", Quantity: 1, AvgBuyPrice: 0},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	list, err := repo.List("alice")
	require.NoError(t, err)
	assert.Empty(t, list, "nothing is stored when any holding is invalid")
}

func TestHoldingRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)

	saved, err := repo.Upsert("alice", []Holding{{Symbol: "TCS", Quantity: 10, AvgBuyPrice: 3500}})
	require.NoError(t, err)

	err = repo.Delete("bob", saved[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "other users cannot delete")

	require.NoError(t, repo.Delete("alice", saved[0].ID))

	err = repo.Delete("alice", saved[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
