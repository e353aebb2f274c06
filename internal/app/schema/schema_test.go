package schema

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swcatalog/starwars/internal/db"
)

func TestStatements_BothDialects(t *testing.T) {
	lite, err := Statements(db.SQLite)
	require.NoError(t, err)
	pg, err := Statements(db.Postgres)
	require.NoError(t, err)

	assert.Len(t, pg, len(lite))
	assert.Contains(t, pg[0], "BIGSERIAL PRIMARY KEY")

	_, err = Statements(db.Dialect("mysql"))
	assert.Error(t, err)
}

func TestApply_Idempotent(t *testing.T) {
	database, err := db.OpenSQLite(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	require.NoError(t, Apply(ctx, database, zerolog.Nop()))

	_, err = database.DB.ExecContext(ctx,
		`INSERT INTO planets (name, population) VALUES (?, ?)`, "Tatooine", 200000)
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, database, zerolog.Nop()))

	var n int
	require.NoError(t, database.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM planets`).Scan(&n))
	assert.Equal(t, 1, n)

	for _, table := range []string{"characters", "movies", "starships", "species", "vehicles", "favorites"} {
		var count int
		err := database.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count)
		assert.NoError(t, err, table)
	}
}

func TestApply_StarshipCheckConstraint(t *testing.T) {
	database, err := db.OpenSQLite(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	require.NoError(t, Apply(ctx, database, zerolog.Nop()))

	_, err = database.DB.ExecContext(ctx,
		`INSERT INTO starships (name, cost_in_credits) VALUES (?, ?)`, "X-wing", -1)
	assert.Error(t, err)
}
