package schema

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/swcatalog/starwars/internal/db"
)

//go:embed *.sql
var files embed.FS

// Statements returns the DDL statements for the given dialect in file order
func Statements(dialect db.Dialect) ([]string, error) {
	content, err := files.ReadFile(string(dialect) + ".sql")
	if err != nil {
		return nil, fmt.Errorf("no schema for dialect %q: %w", dialect, err)
	}

	var statements []string
	for _, stmt := range strings.Split(string(content), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements, nil
}

// Apply creates every table that does not exist yet. It is safe to run on
// each startup; existing tables and rows are left untouched.
func Apply(ctx context.Context, database *db.Database, lgr zerolog.Logger) error {
	statements, err := Statements(database.Dialect)
	if err != nil {
		return err
	}

	for i, stmt := range statements {
		if _, err := database.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}

	lgr.Info().Str("dialect", string(database.Dialect)).Int("statements", len(statements)).Msg("Database schema ensured")
	return nil
}
