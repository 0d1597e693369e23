package service

import (
	"time"

	"github.com/anonbb/anonbb/internal/config"
	"github.com/anonbb/anonbb/internal/crypto"
	"github.com/anonbb/anonbb/internal/domain"
	internal_errors "github.com/anonbb/anonbb/internal/errors"
	"github.com/anonbb/anonbb/internal/service/utils"
)

// ThreadService is the thread store: creation, listing, lookup and the
// password-gated moderation operations.
type ThreadService interface {
	Create(creation domain.ThreadCreationData) (domain.Thread, error)
	Recent(board domain.BoardName) ([]domain.Thread, error)
	Get(board domain.BoardName, id domain.ThreadId) (domain.Thread, error)
	Delete(board domain.BoardName, id domain.ThreadId, deletePassword string) error
	Report(board domain.BoardName, id domain.ThreadId) error
}

type Thread struct {
	storage ThreadStorage
	guard   crypto.PasswordGuard
	cfg     config.Public
}

type ThreadStorage interface {
	CreateThread(board domain.BoardName, thread domain.Thread) error
	GetThread(board domain.BoardName, id domain.ThreadId) (domain.Thread, error)
	RecentThreads(board domain.BoardName, limit int) ([]domain.Thread, error)
	DeleteThread(board domain.BoardName, id domain.ThreadId) error
	ReportThread(board domain.BoardName, id domain.ThreadId) error
}

func NewThread(storage ThreadStorage, guard crypto.PasswordGuard, cfg config.Public) *Thread {
	return &Thread{storage, guard, cfg}
}

// Create persists a new thread. The returned value is the internal form,
// hash included; callers redact before external exposure.
func (t *Thread) Create(creation domain.ThreadCreationData) (domain.Thread, error) {
	// Markup-only input sanitizes to nothing, which is a missing text.
	text := utils.SanitizeText(creation.Text)
	if text == "" {
		return domain.Thread{}, internal_errors.Validation([]string{"text"})
	}

	hash, err := t.guard.Hash(creation.DeletePassword)
	if err != nil {
		return domain.Thread{}, err
	}

	now := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway
	thread := domain.Thread{
		Id:                 domain.NewPostId(),
		Text:               text,
		CreatedOn:          now,
		BumpedOn:           now,
		DeletePasswordHash: hash,
		Replies:            []domain.Reply{},
	}
	if err := t.storage.CreateThread(creation.Board, thread); err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

// Recent returns the most recently bumped threads, trimmed for listing:
// moderation fields stripped, replies cut to the configured tail.
func (t *Thread) Recent(board domain.BoardName) ([]domain.Thread, error) {
	threads, err := t.storage.RecentThreads(board, t.cfg.RecentThreads)
	if err != nil {
		return nil, err
	}
	previews := make([]domain.Thread, len(threads))
	for i, thread := range threads {
		previews[i] = thread.Preview(t.cfg.TailReplies)
	}
	return previews, nil
}

// Get returns the full thread with moderation fields stripped from the
// thread and every reply.
func (t *Thread) Get(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
	thread, err := t.storage.GetThread(board, id)
	if err != nil {
		return domain.Thread{}, err
	}
	return thread.Redacted(), nil
}

func (t *Thread) Delete(board domain.BoardName, id domain.ThreadId, deletePassword string) error {
	thread, err := t.storage.GetThread(board, id)
	if err != nil {
		return err
	}
	if !t.guard.Verify(deletePassword, thread.DeletePasswordHash) {
		return internal_errors.Forbidden()
	}
	return t.storage.DeleteThread(board, id)
}

func (t *Thread) Report(board domain.BoardName, id domain.ThreadId) error {
	return t.storage.ReportThread(board, id)
}
