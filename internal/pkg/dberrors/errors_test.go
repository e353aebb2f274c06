package dberrors

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConstraintError_SQLite(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	conn.SetMaxOpenConns(1)

	_, err = conn.Exec(`CREATE TABLE ships (name TEXT NOT NULL, cost INTEGER CHECK (cost >= 0))`)
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO ships (name, cost) VALUES (?, ?)`, "X-wing", -1)
	require.Error(t, err)
	assert.True(t, IsConstraintError(err))
	assert.True(t, IsConstraintError(fmt.Errorf("insert: %w", err)))

	_, err = conn.Exec(`INSERT INTO ships (cost) VALUES (1)`)
	require.Error(t, err)
	assert.True(t, IsConstraintError(err))

	_, err = conn.Exec(`SELECT * FROM missing_table`)
	require.Error(t, err)
	assert.False(t, IsConstraintError(err))

	assert.False(t, IsConstraintError(errors.New("connection reset")))
}
