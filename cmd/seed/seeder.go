// Package main provides the seed command for loading sample statement
// data. Seeders self-register and run individually or together, each run
// wrapped in one transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

// Seeder populates one slice of the schema inside the supplied transaction.
type Seeder interface {
	Name() string
	Description() string
	Seed(ctx context.Context, tx *sql.Tx) error
}

var seeders = map[string]Seeder{}

func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

// listSeeders returns the registered seeders sorted by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// runSeeder executes one named seeder in its own transaction.
func runSeeder(ctx context.Context, db *sql.DB, name string) error {
	s, ok := seeders[name]
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}
	return seedInTx(ctx, db, s)
}

// runAllSeeders executes every registered seeder in one transaction, in
// name order, rolling everything back if any seeder fails.
func runAllSeeders(ctx context.Context, db *sql.DB) error {
	return seedInTx(ctx, db, listSeeders()...)
}

func seedInTx(ctx context.Context, db *sql.DB, batch ...Seeder) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, s := range batch {
		if err := s.Seed(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
