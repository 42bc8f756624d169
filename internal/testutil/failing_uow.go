package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/xerplan/internal/db"
)

// FailOnStatementUoW is a test UoW that injects Err into the first
// ExecContext or PrepareContext call whose SQL contains Match. It drives
// rollback tests that fail an import at a precise write.
type FailOnStatementUoW struct {
	DB    *sql.DB
	Match string
	Err   error
}

func (u *FailOnStatementUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnStatement{DBTX: tx, match: u.Match, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnStatement struct {
	db.DBTX
	match string
	err   error
}

func (f *failOnStatement) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func (f *failOnStatement) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	if strings.Contains(query, f.match) {
		return nil, f.err
	}
	return f.DBTX.PrepareContext(ctx, query)
}
