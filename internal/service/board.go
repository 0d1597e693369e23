package service

import (
	"strings"

	"github.com/anonbb/anonbb/internal/domain"
	internal_errors "github.com/anonbb/anonbb/internal/errors"
)

// BoardService is the façade consumed by the HTTP layer. It validates that
// every field an operation requires is present, resolves the board namespace
// and delegates to the thread/reply services.
type BoardService interface {
	CreateThread(board, text, deletePassword string) (domain.Thread, error)
	RecentThreads(board string) ([]domain.Thread, error)
	GetThread(board, threadId string) (domain.Thread, error)
	DeleteThread(board, threadId, deletePassword string) error
	ReportThread(board, threadId string) error
	CreateReply(board, threadId, text, deletePassword string) (domain.Reply, error)
	RedactReply(board, threadId, replyId, deletePassword string) error
	ReportReply(board, threadId, replyId string) error
	Boards() ([]domain.Board, error)
}

type Board struct {
	registry Registry
	threads  ThreadService
	replies  ReplyService
	names    BoardValidator
}

type Registry interface {
	ResolveBoard(board domain.BoardName) error
	Boards() ([]domain.Board, error)
}

type BoardValidator interface {
	Validate(name domain.BoardName) error
}

func NewBoard(registry Registry, threads ThreadService, replies ReplyService, names BoardValidator) *Board {
	return &Board{registry, threads, replies, names}
}

type field struct {
	name  string
	value string
}

// requireFields reports every missing field, in declaration order, not just
// the first one.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return internal_errors.Validation(missing)
	}
	return nil
}

// resolve validates the board name and makes sure its namespace exists.
// Boards are created implicitly on first use, lookups included, mirroring
// how the registry grows one namespace per board name.
func (b *Board) resolve(board string) error {
	if err := b.names.Validate(board); err != nil {
		return err
	}
	return b.registry.ResolveBoard(board)
}

func (b *Board) CreateThread(board, text, deletePassword string) (domain.Thread, error) {
	if err := requireFields(
		field{"board", board},
		field{"text", text},
		field{"delete_password", deletePassword},
	); err != nil {
		return domain.Thread{}, err
	}
	if err := b.resolve(board); err != nil {
		return domain.Thread{}, err
	}
	return b.threads.Create(domain.ThreadCreationData{Board: board, Text: text, DeletePassword: deletePassword})
}

func (b *Board) RecentThreads(board string) ([]domain.Thread, error) {
	if err := requireFields(field{"board", board}); err != nil {
		return nil, err
	}
	if err := b.resolve(board); err != nil {
		return nil, err
	}
	return b.threads.Recent(board)
}

func (b *Board) GetThread(board, threadId string) (domain.Thread, error) {
	if err := requireFields(field{"board", board}, field{"thread_id", threadId}); err != nil {
		return domain.Thread{}, err
	}
	if err := b.resolve(board); err != nil {
		return domain.Thread{}, err
	}
	return b.threads.Get(board, threadId)
}

func (b *Board) DeleteThread(board, threadId, deletePassword string) error {
	if err := requireFields(
		field{"board", board},
		field{"thread_id", threadId},
		field{"delete_password", deletePassword},
	); err != nil {
		return err
	}
	if err := b.resolve(board); err != nil {
		return err
	}
	return b.threads.Delete(board, threadId, deletePassword)
}

func (b *Board) ReportThread(board, threadId string) error {
	if err := requireFields(field{"board", board}, field{"thread_id", threadId}); err != nil {
		return err
	}
	if err := b.resolve(board); err != nil {
		return err
	}
	return b.threads.Report(board, threadId)
}

func (b *Board) CreateReply(board, threadId, text, deletePassword string) (domain.Reply, error) {
	if err := requireFields(
		field{"board", board},
		field{"thread_id", threadId},
		field{"text", text},
		field{"delete_password", deletePassword},
	); err != nil {
		return domain.Reply{}, err
	}
	if err := b.resolve(board); err != nil {
		return domain.Reply{}, err
	}
	return b.replies.Append(domain.ReplyCreationData{Board: board, Thread: threadId, Text: text, DeletePassword: deletePassword})
}

func (b *Board) RedactReply(board, threadId, replyId, deletePassword string) error {
	if err := requireFields(
		field{"board", board},
		field{"thread_id", threadId},
		field{"reply_id", replyId},
		field{"delete_password", deletePassword},
	); err != nil {
		return err
	}
	if err := b.resolve(board); err != nil {
		return err
	}
	return b.replies.Redact(board, threadId, replyId, deletePassword)
}

func (b *Board) ReportReply(board, threadId, replyId string) error {
	if err := requireFields(
		field{"board", board},
		field{"thread_id", threadId},
		field{"reply_id", replyId},
	); err != nil {
		return err
	}
	if err := b.resolve(board); err != nil {
		return err
	}
	return b.replies.Report(board, threadId, replyId)
}

func (b *Board) Boards() ([]domain.Board, error) {
	return b.registry.Boards()
}
