// Package pg persists boards, threads and their embedded replies in
// PostgreSQL. Each board gets its own partition table, created on first use
// by the registry; a thread is one row with its replies embedded in a JSONB
// array, so every reply mutation is a single atomic statement on one row.
package pg

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/anonbb/anonbb/internal/config"
	"github.com/anonbb/anonbb/internal/domain"
	"github.com/anonbb/anonbb/internal/logger"
)

type Storage struct {
	db  *sql.DB
	cfg *config.Config
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	s := &Storage{db, cfg}
	if err := s.ensureRegistry(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func threadsPartitionName(board domain.BoardName) string {
	return fmt.Sprintf("threads_%s", board)
}

// ThreadsPartitionName returns the quoted partition table name for a board,
// safe to interpolate into SQL.
func ThreadsPartitionName(board domain.BoardName) string {
	return pq.QuoteIdentifier(threadsPartitionName(board))
}
