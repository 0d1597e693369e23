package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Board          BoardName
	Text           string
	DeletePassword string
}

// Thread is the internal form: it carries the moderation fields. Callers are
// responsible for redacting before external exposure (see Preview/Redacted).
type Thread struct {
	Id                 ThreadId
	Text               string
	CreatedOn          time.Time
	BumpedOn           time.Time
	DeletePasswordHash string
	Reported           bool
	Replies            []Reply
	ReplyCount         int
}

// Reply returns the reply with the given id, nil if absent.
func (t *Thread) Reply(id ReplyId) *Reply {
	for i := range t.Replies {
		if t.Replies[i].Id == id {
			return &t.Replies[i]
		}
	}
	return nil
}

// Redacted returns a copy safe for external exposure: moderation fields of
// the thread and of every reply cleared, full reply list kept.
func (t Thread) Redacted() Thread {
	t.DeletePasswordHash = ""
	t.Reported = false
	t.Replies = redactReplies(t.Replies)
	return t
}

// Preview returns a copy trimmed for listings: moderation fields cleared and
// only the most recent tailReplies kept, in chronological order. ReplyCount
// still reflects the true total.
func (t Thread) Preview(tailReplies int) Thread {
	t.DeletePasswordHash = ""
	t.Reported = false
	replies := t.Replies
	if len(replies) > tailReplies {
		replies = replies[len(replies)-tailReplies:]
	}
	t.Replies = redactReplies(replies)
	return t
}

func redactReplies(replies []Reply) []Reply {
	out := make([]Reply, len(replies))
	for i, r := range replies {
		r.DeletePasswordHash = ""
		r.Reported = false
		out[i] = r
	}
	return out
}
