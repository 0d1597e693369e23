package service

import (
	"time"

	"github.com/anonbb/anonbb/internal/crypto"
	"github.com/anonbb/anonbb/internal/domain"
	internal_errors "github.com/anonbb/anonbb/internal/errors"
	"github.com/anonbb/anonbb/internal/service/utils"
)

// ReplyService operates on the embedded reply collection of one thread.
type ReplyService interface {
	Append(creation domain.ReplyCreationData) (domain.Reply, error)
	Redact(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId, deletePassword string) error
	Report(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error
}

type Reply struct {
	storage ReplyStorage
	guard   crypto.PasswordGuard
}

type ReplyStorage interface {
	GetThread(board domain.BoardName, id domain.ThreadId) (domain.Thread, error)
	AppendReply(board domain.BoardName, threadId domain.ThreadId, reply domain.Reply) error
	RedactReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId, placeholder string) error
	ReportReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error
}

func NewReply(storage ReplyStorage, guard crypto.PasswordGuard) *Reply {
	return &Reply{storage, guard}
}

// Append creates a reply with its own password hash and a timestamp assigned
// at append time, and attaches it to the parent thread. The storage append
// also recomputes the thread's bump time.
func (r *Reply) Append(creation domain.ReplyCreationData) (domain.Reply, error) {
	// Markup-only input sanitizes to nothing, which is a missing text.
	text := utils.SanitizeText(creation.Text)
	if text == "" {
		return domain.Reply{}, internal_errors.Validation([]string{"text"})
	}

	hash, err := r.guard.Hash(creation.DeletePassword)
	if err != nil {
		return domain.Reply{}, err
	}

	reply := domain.Reply{
		Id:                 domain.NewPostId(),
		Text:               text,
		CreatedOn:          time.Now().UTC().Round(time.Microsecond),
		DeletePasswordHash: hash,
	}
	if err := r.storage.AppendReply(creation.Board, creation.Thread, reply); err != nil {
		return domain.Reply{}, err
	}
	return reply, nil
}

// Redact verifies the password against the reply's own hash (not the
// thread's) and replaces the text with the fixed placeholder. Redacting an
// already-redacted reply succeeds and leaves the placeholder in place.
func (r *Reply) Redact(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId, deletePassword string) error {
	thread, err := r.storage.GetThread(board, threadId)
	if err != nil {
		return err
	}
	reply := thread.Reply(replyId)
	if reply == nil {
		return internal_errors.NotFound("reply", replyId)
	}
	if !r.guard.Verify(deletePassword, reply.DeletePasswordHash) {
		return internal_errors.Forbidden()
	}
	return r.storage.RedactReply(board, threadId, replyId, domain.RedactedText)
}

func (r *Reply) Report(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error {
	// Thread lookup first so a missing thread is reported as such.
	if _, err := r.storage.GetThread(board, threadId); err != nil {
		return err
	}
	return r.storage.ReportReply(board, threadId, replyId)
}
