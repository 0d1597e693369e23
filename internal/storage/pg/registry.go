package pg

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/anonbb/anonbb/internal/domain"
)

// ensureRegistry bootstraps the board registry table. Per-board partition
// tables are created lazily by ResolveBoard.
func (s *Storage) ensureRegistry() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS boards (
		name TEXT PRIMARY KEY,
		created_on TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'utc')
	)`)
	if err != nil {
		return fmt.Errorf("failed to create board registry: %w", err)
	}
	return nil
}

// ResolveBoard makes sure the namespace for board exists, creating it on
// first use. Both statements are idempotent and run in one transaction, so
// concurrent first use of the same name creates at most one namespace and
// every caller observes it.
func (s *Storage) ResolveBoard(board domain.BoardName) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	if _, err := tx.Exec("INSERT INTO boards(name) VALUES($1) ON CONFLICT (name) DO NOTHING", board); err != nil {
		return fmt.Errorf("failed to register board: %w", err)
	}

	partition := ThreadsPartitionName(board)
	query := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		created_on TIMESTAMPTZ NOT NULL,
		bumped_on TIMESTAMPTZ NOT NULL,
		delete_password_hash TEXT NOT NULL,
		reported BOOLEAN NOT NULL DEFAULT FALSE,
		replies JSONB NOT NULL DEFAULT '[]'::jsonb,
		reply_count INTEGER NOT NULL DEFAULT 0
	)`, partition)
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create board partition: %w", err)
	}

	index := pq.QuoteIdentifier(threadsPartitionName(board) + "_bumped_on_idx")
	if _, err := tx.Exec(fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (bumped_on DESC, id ASC)", index, partition)); err != nil {
		return fmt.Errorf("failed to create bump index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Boards lists the known namespaces. Only names that went through
// ResolveBoard appear here, so implementation tables stay invisible.
func (s *Storage) Boards() ([]domain.Board, error) {
	rows, err := s.db.Query("SELECT name, created_on FROM boards ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.Name, &b.CreatedOn); err != nil {
			return nil, fmt.Errorf("failed to scan board row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}
