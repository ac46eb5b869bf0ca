// Package store keeps the scoreboard for the current process in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/guessmaster/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryDSN opens a private in-memory database that is discarded on Close.
const MemoryDSN = ":memory:"

// Store wraps SQLite access for round results.
type Store struct {
	db *sql.DB
}

// Open opens the database and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every pooled connection to :memory: would get its own database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			tier TEXT NOT NULL,
			max_tries INTEGER NOT NULL,
			target INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			won INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS round_guesses (
			round_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			value INTEGER NOT NULL,
			PRIMARY KEY (round_id, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_tier ON rounds(tier);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRound stores a finished round and its guesses.
func (s *Store) InsertRound(ctx context.Context, round model.RoundResult) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	duration := round.EndedAt.Sub(round.StartedAt).Milliseconds()
	if round.StartedAt.IsZero() || duration < 0 {
		duration = 0
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO rounds (started_at, ended_at, tier, max_tries, target, attempts, won, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		round.StartedAt.Format(time.RFC3339Nano),
		round.EndedAt.Format(time.RFC3339Nano),
		round.Tier,
		round.MaxTries,
		round.Target,
		round.Attempts,
		boolToInt(round.Won),
		duration,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(round.Guesses) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO round_guesses (round_id, seq, value) VALUES (?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, v := range round.Guesses {
			if _, err = stmt.ExecContext(ctx, id, i+1, v); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// filteredRounds returns a subquery over the rounds selected by filter.
// Last keeps the most recent rounds by id.
func filteredRounds(filter model.ScoreFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Tier != "" {
		clauses = append(clauses, "tier = ?")
		args = append(args, filter.Tier)
	}
	limit := -1
	if filter.Last > 0 {
		limit = filter.Last
	}
	args = append(args, limit)
	return fmt.Sprintf(`(SELECT * FROM rounds WHERE %s ORDER BY id DESC LIMIT ?)`,
		strings.Join(clauses, " AND ")), args
}

// ListRounds returns recorded rounds in play order.
func (s *Store) ListRounds(ctx context.Context, filter model.ScoreFilter) ([]model.RoundAggregate, error) {
	source, args := filteredRounds(filter)
	query := fmt.Sprintf(`SELECT id, ended_at, tier, max_tries, target, attempts, won, duration_ms
		FROM %s
		ORDER BY id ASC`, source)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var rounds []model.RoundAggregate
	for rows.Next() {
		var agg model.RoundAggregate
		var endedAt string
		var won int
		if err := rows.Scan(&agg.RoundID, &endedAt, &agg.Tier, &agg.MaxTries, &agg.Target, &agg.Attempts, &won, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		agg.Won = won != 0
		rounds = append(rounds, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}

// ListTierAggregates aggregates the rounds selected by filter per tier.
func (s *Store) ListTierAggregates(ctx context.Context, filter model.ScoreFilter) ([]model.TierAggregate, error) {
	source, args := filteredRounds(filter)
	query := fmt.Sprintf(`SELECT tier, COUNT(*) AS rounds, SUM(won) AS wins, SUM(attempts) AS attempts_sum,
		COALESCE(MIN(CASE WHEN won = 1 THEN attempts END), 0) AS best_attempts
		FROM %s
		GROUP BY tier
		ORDER BY MAX(max_tries) DESC, tier ASC`, source)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.TierAggregate
	for rows.Next() {
		var agg model.TierAggregate
		if err := rows.Scan(&agg.Tier, &agg.Rounds, &agg.Wins, &agg.AttemptsSum, &agg.BestAttempts); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListGuesses returns the guesses of a round in submission order.
func (s *Store) ListGuesses(ctx context.Context, roundID int64) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM round_guesses WHERE round_id = ? ORDER BY seq ASC`, roundID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var guesses []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		guesses = append(guesses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return guesses, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
