package pg

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anonbb/anonbb/internal/domain"
	internal_errors "github.com/anonbb/anonbb/internal/errors"
)

const threadColumns = "id, text, created_on, bumped_on, delete_password_hash, reported, replies, reply_count"

func (s *Storage) CreateThread(board domain.BoardName, thread domain.Thread) error {
	_, err := s.db.Exec(fmt.Sprintf(`
		INSERT INTO %s (id, text, created_on, bumped_on, delete_password_hash)
		VALUES ($1, $2, $3, $4, $5)`, ThreadsPartitionName(board)),
		thread.Id, thread.Text, thread.CreatedOn, thread.BumpedOn, thread.DeletePasswordHash)
	if err != nil {
		return fmt.Errorf("failed to insert thread: %w", err)
	}
	return nil
}

// GetThread returns the internal form including password hashes and report
// flags of the thread and every embedded reply.
func (s *Storage) GetThread(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
	row := s.db.QueryRow(fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1", threadColumns, ThreadsPartitionName(board)), id)

	thread, err := scanThread(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("thread", id)
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

// RecentThreads returns at most limit threads ordered by bump time, newest
// first, ids ascending on ties so listings are deterministic.
func (s *Storage) RecentThreads(board domain.BoardName, limit int) ([]domain.Thread, error) {
	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY bumped_on DESC, id ASC LIMIT $1",
		threadColumns, ThreadsPartitionName(board)), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		thread, err := scanThread(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan thread row: %w", err)
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

// DeleteThread permanently removes the thread; the embedded replies go with
// the row.
func (s *Storage) DeleteThread(board domain.BoardName, id domain.ThreadId) error {
	result, err := s.db.Exec(fmt.Sprintf(
		"DELETE FROM %s WHERE id = $1", ThreadsPartitionName(board)), id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("thread", id)
	}
	return nil
}

// ReportThread flags the thread. Reporting an already-reported thread still
// succeeds.
func (s *Storage) ReportThread(board domain.BoardName, id domain.ThreadId) error {
	result, err := s.db.Exec(fmt.Sprintf(
		"UPDATE %s SET reported = TRUE WHERE id = $1", ThreadsPartitionName(board)), id)
	if err != nil {
		return fmt.Errorf("failed to report thread: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("thread", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanThread(row rowScanner) (domain.Thread, error) {
	var t domain.Thread
	var repliesRaw []byte
	err := row.Scan(&t.Id, &t.Text, &t.CreatedOn, &t.BumpedOn,
		&t.DeletePasswordHash, &t.Reported, &repliesRaw, &t.ReplyCount)
	if err != nil {
		return domain.Thread{}, err
	}
	if err := json.Unmarshal(repliesRaw, &t.Replies); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to decode embedded replies: %w", err)
	}
	return t, nil
}
