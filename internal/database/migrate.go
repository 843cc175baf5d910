package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schema string

// Migrate applies the embedded schema. Every statement is idempotent, so it is
// safe to run on each deploy.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements(schema) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement %d: %w", i+1, err)
		}
	}

	return nil
}

func statements(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ";") {
		var lines []string

		for _, line := range strings.Split(part, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}

			lines = append(lines, line)
		}

		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			out = append(out, stmt)
		}
	}

	return out
}
