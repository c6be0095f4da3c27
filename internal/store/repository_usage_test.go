package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/associo/tallysync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageRepository_IncrementUsage(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUsageRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO locality_usage`)).
		WithArgs(int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementUsage(testContext(), 1, 7)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageRepository_RecomputePercentages(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUsageRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE locality_usage`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.RecomputePercentages(testContext(), 1)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageRepository_RecomputePercentages_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUsageRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE locality_usage`)).
		WillReturnError(errors.New("deadlock detected"))

	err := repo.RecomputePercentages(testContext(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUsageRepository_GetFavorites(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUsageRepository(newDBFromSQL(db), logger.Nop())

	columns := []string{"id", "name", "postal_code", "use_count", "usage_percentage", "pinned", "display_order"}
	mock.ExpectQuery(`SELECT .+ FROM locality_usage u JOIN localities l`).
		WithArgs(int64(1), true, 5.0).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, "Springfield", "49001", 10, 40.0, true, 1).
			AddRow(7, "Shelbyville", "49002", 12, 48.0, false, 0))

	favorites, err := repo.GetFavorites(testContext(), 1, 5.0)

	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "Springfield", favorites[0].Name)
	assert.True(t, favorites[0].Pinned)
	assert.InDelta(t, 48.0, favorites[1].UsagePercentage, 0.001)
}

func TestUsageRepository_GetUsage(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUsageRepository(newDBFromSQL(db), logger.Nop())

	columns := []string{"questionnaire_id", "locality_id", "use_count", "usage_percentage", "pinned", "display_order"}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT questionnaire_id, locality_id, use_count, usage_percentage, pinned, display_order`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, 3, 5, 33.33, false, 0).
			AddRow(1, 7, 10, 66.67, false, 0))

	usage, err := repo.GetUsage(testContext(), 1)

	require.NoError(t, err)
	require.Len(t, usage, 2)

	var sum float64
	for _, row := range usage {
		sum += row.UsagePercentage
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

// newUsageFixtureDB opens an in-memory SQLite database holding the
// locality_usage table, so the aggregate statements run against a real
// engine and the recompute arithmetic itself is checked, not just the
// statement text.
func newUsageFixtureDB(t *testing.T) *DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE locality_usage (
			questionnaire_id integer NOT NULL,
			locality_id      integer NOT NULL,
			use_count        integer NOT NULL DEFAULT 0,
			usage_percentage real    NOT NULL DEFAULT 0,
			pinned           boolean NOT NULL DEFAULT false,
			display_order    integer NOT NULL DEFAULT 0,
			PRIMARY KEY (questionnaire_id, locality_id)
		)`)
	require.NoError(t, err)

	return newDBFromSQL(db)
}

func TestUsageRepository_RecomputePercentages_ExactShares(t *testing.T) {
	repo := NewUsageRepository(newUsageFixtureDB(t), logger.Nop())

	// Localities referenced 1, 2, and 5 times out of 8: 12.5%, 25%,
	// 62.5%. A locality of another questionnaire must stay untouched.
	for _, localityID := range []int64{10, 11, 11, 12, 12, 12, 12, 12} {
		require.NoError(t, repo.IncrementUsage(testContext(), 1, localityID))
	}
	require.NoError(t, repo.IncrementUsage(testContext(), 2, 10))
	require.NoError(t, repo.RecomputePercentages(testContext(), 1))

	usage, err := repo.GetUsage(testContext(), 1)
	require.NoError(t, err)
	require.Len(t, usage, 3)

	shares := make(map[int64]float64, len(usage))
	var sum float64
	for _, row := range usage {
		shares[row.LocalityID] = row.UsagePercentage
		sum += row.UsagePercentage
	}

	assert.Equal(t, 12.5, shares[10])
	assert.Equal(t, 25.0, shares[11])
	assert.Equal(t, 62.5, shares[12])
	assert.Equal(t, 100.0, sum)

	other, err := repo.GetUsage(testContext(), 2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Zero(t, other[0].UsagePercentage)
}

func TestUsageRepository_RecomputePercentages_RoundedSharesStayNearOneHundred(t *testing.T) {
	repo := NewUsageRepository(newUsageFixtureDB(t), logger.Nop())

	// Three localities once each round to 33.33% apiece; the total lands
	// just below 100 and must never drift further than rounding allows.
	for _, localityID := range []int64{10, 11, 12} {
		require.NoError(t, repo.IncrementUsage(testContext(), 1, localityID))
	}
	require.NoError(t, repo.RecomputePercentages(testContext(), 1))

	usage, err := repo.GetUsage(testContext(), 1)
	require.NoError(t, err)
	require.Len(t, usage, 3)

	var sum float64
	for _, row := range usage {
		assert.InDelta(t, 33.33, row.UsagePercentage, 0.001)
		sum += row.UsagePercentage
	}
	assert.InDelta(t, 100.0, sum, 0.05)
}
