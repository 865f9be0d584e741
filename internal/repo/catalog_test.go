package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/repo"
)

// The catalog repos are read-only, so tests seed rows with raw SQL inside
// the rolled-back test transaction.

func insertCity(t *testing.T, tx pgx.Tx, name, country string, popularity int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := tx.QueryRow(context.Background(),
		`INSERT INTO cities (name, country, popularity) VALUES ($1, $2, $3) RETURNING id`,
		name, country, popularity,
	).Scan(&id)
	require.NoError(t, err, "insert city")
	return id
}

func insertActivity(t *testing.T, tx pgx.Tx, cityID uuid.UUID, name string, cost float64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := tx.QueryRow(context.Background(),
		`INSERT INTO activities (city_id, name, cost) VALUES ($1, $2, $3) RETURNING id`,
		cityID, name, cost,
	).Scan(&id)
	require.NoError(t, err, "insert activity")
	return id
}

func TestCityRepo_Search_SubstringCaseInsensitive(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewCityRepo(tx)
	ctx := context.Background()

	insertCity(t, tx, "Kyoto", "Japan", 95)
	insertCity(t, tx, "Tokyo", "Japan", 99)
	insertCity(t, tx, "Lisbon", "Portugal", 80)

	cities, total, err := r.Search(ctx, "KYO", domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	// "KYO" matches both Kyoto and Tokyo; most popular first.
	assert.EqualValues(t, 2, total)
	require.Len(t, cities, 2)
	assert.Equal(t, "Tokyo", cities[0].Name)
	assert.Equal(t, "Kyoto", cities[1].Name)
}

func TestCityRepo_Search_EmptyQueryMatchesAll(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewCityRepo(tx)

	insertCity(t, tx, "Kyoto", "Japan", 95)
	insertCity(t, tx, "Lisbon", "Portugal", 80)

	_, total, err := r.Search(context.Background(), "", domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(2))
}

func TestCityRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewCityRepo(tx)

	id := insertCity(t, tx, "Kyoto", "Japan", 95)

	got, err := r.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Kyoto", got.Name)
	assert.Equal(t, "Japan", got.Country)
	assert.Equal(t, 3, got.CostIndex, "cost_index defaults to 3")
}

func TestCityRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewCityRepo(tx)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCityRepo_GetByIDs_MissingIDsAbsent(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewCityRepo(tx)

	kyoto := insertCity(t, tx, "Kyoto", "Japan", 95)
	missing := uuid.New()

	got, err := r.GetByIDs(context.Background(), []uuid.UUID{kyoto, missing})

	require.NoError(t, err)
	assert.Contains(t, got, kyoto)
	assert.NotContains(t, got, missing)
}

func TestCityRepo_GetByIDs_Empty(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewCityRepo(tx)

	got, err := r.GetByIDs(context.Background(), []uuid.UUID{})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestActivityRepo_ListByCity_OrderedByName(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewActivityRepo(tx)

	city := insertCity(t, tx, "Kyoto", "Japan", 95)
	other := insertCity(t, tx, "Tokyo", "Japan", 99)
	insertActivity(t, tx, city, "Nijo Castle", 10)
	insertActivity(t, tx, city, "Fushimi Inari", 0)
	insertActivity(t, tx, other, "Skytree", 20)

	got, err := r.ListByCity(context.Background(), city)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Fushimi Inari", got[0].Name)
	assert.Equal(t, "Nijo Castle", got[1].Name)
}

func TestActivityRepo_ListByCity_Empty(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewActivityRepo(tx)

	city := insertCity(t, tx, "Kyoto", "Japan", 95)

	got, err := r.ListByCity(context.Background(), city)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestActivityRepo_GetByIDs(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewActivityRepo(tx)

	city := insertCity(t, tx, "Kyoto", "Japan", 95)
	a := insertActivity(t, tx, city, "Fushimi Inari", 0)
	missing := uuid.New()

	got, err := r.GetByIDs(context.Background(), []uuid.UUID{a, missing})

	require.NoError(t, err)
	require.Contains(t, got, a)
	assert.Equal(t, "Fushimi Inari", got[a].Name)
	assert.NotContains(t, got, missing)
}
