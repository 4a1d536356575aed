// Package database
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoRows = pgx.ErrNoRows

type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

type Database struct {
	Querier

	Pool Pool
}

var _ Pool = (*pgxpool.Pool)(nil)

func NewDatabase(pool Pool) *Database {
	return &Database{
		Querier: New(pool),
		Pool:    pool,
	}
}

// EnsureSchema ensures the database schema is applied to the
// Postgres database. The schema is applied to the database
// if the schema is not detected.
func (db *Database) EnsureSchema(ctx context.Context) error {
	exists, err := db.CheckRecipesTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	if err := db.ApplySchema(ctx); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}

// InTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (db *Database) InTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(New(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rolling back transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
