package pg

import (
	"encoding/json"
	"fmt"

	"github.com/anonbb/anonbb/internal/domain"
	internal_errors "github.com/anonbb/anonbb/internal/errors"
)

// AppendReply appends to the embedded reply array and bumps the thread in a
// single atomic statement, so concurrent appends to the same thread cannot
// lose each other. GREATEST keeps bumped_on monotonic.
func (s *Storage) AppendReply(board domain.BoardName, threadId domain.ThreadId, reply domain.Reply) error {
	payload, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("failed to encode reply: %w", err)
	}

	result, err := s.db.Exec(fmt.Sprintf(`
		UPDATE %s
		SET replies = replies || $1::jsonb,
		    reply_count = reply_count + 1,
		    bumped_on = GREATEST(bumped_on, $2)
		WHERE id = $3`, ThreadsPartitionName(board)),
		payload, reply.CreatedOn, threadId)
	if err != nil {
		return fmt.Errorf("failed to append reply: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("thread", threadId)
	}
	return nil
}

// RedactReply replaces the reply's text with placeholder in place. Id,
// timestamp and password hash stay untouched; order is preserved.
func (s *Storage) RedactReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId, placeholder string) error {
	result, err := s.db.Exec(fmt.Sprintf(`
		UPDATE %s
		SET replies = (
			SELECT jsonb_agg(
				CASE WHEN elem->>'id' = $2
				     THEN jsonb_set(elem, '{text}', to_jsonb($3::text))
				     ELSE elem END
				ORDER BY ord)
			FROM jsonb_array_elements(replies) WITH ORDINALITY AS r(elem, ord)
		)
		WHERE id = $1
		  AND replies @> jsonb_build_array(jsonb_build_object('id', $2::text))`,
		ThreadsPartitionName(board)),
		threadId, replyId, placeholder)
	if err != nil {
		return fmt.Errorf("failed to redact reply: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("reply", replyId)
	}
	return nil
}

// ReportReply flags the reply inside the embedded array.
func (s *Storage) ReportReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error {
	result, err := s.db.Exec(fmt.Sprintf(`
		UPDATE %s
		SET replies = (
			SELECT jsonb_agg(
				CASE WHEN elem->>'id' = $2
				     THEN jsonb_set(elem, '{reported}', 'true'::jsonb)
				     ELSE elem END
				ORDER BY ord)
			FROM jsonb_array_elements(replies) WITH ORDINALITY AS r(elem, ord)
		)
		WHERE id = $1
		  AND replies @> jsonb_build_array(jsonb_build_object('id', $2::text))`,
		ThreadsPartitionName(board)),
		threadId, replyId)
	if err != nil {
		return fmt.Errorf("failed to report reply: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return internal_errors.NotFound("reply", replyId)
	}
	return nil
}
