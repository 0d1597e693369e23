// Package api defines the wire shapes of the JSON surface. Password hashes
// and report flags are structurally absent here, not merely zeroed.
package api

import (
	"time"

	"github.com/anonbb/anonbb/internal/domain"
)

type Reply struct {
	Id        string    `json:"_id"`
	Text      string    `json:"text"`
	CreatedOn time.Time `json:"created_on"`
}

type Thread struct {
	Id         string    `json:"_id"`
	Text       string    `json:"text"`
	CreatedOn  time.Time `json:"created_on"`
	BumpedOn   time.Time `json:"bumped_on"`
	Replies    []Reply   `json:"replies"`
	ReplyCount int       `json:"replycount"`
}

type Board struct {
	Name      string    `json:"name"`
	CreatedOn time.Time `json:"created_on"`
}

func NewThread(t domain.Thread) Thread {
	replies := make([]Reply, len(t.Replies))
	for i, r := range t.Replies {
		replies[i] = Reply{Id: r.Id, Text: r.Text, CreatedOn: r.CreatedOn}
	}
	return Thread{
		Id:         t.Id,
		Text:       t.Text,
		CreatedOn:  t.CreatedOn,
		BumpedOn:   t.BumpedOn,
		Replies:    replies,
		ReplyCount: t.ReplyCount,
	}
}

func NewThreads(threads []domain.Thread) []Thread {
	out := make([]Thread, len(threads))
	for i, t := range threads {
		out[i] = NewThread(t)
	}
	return out
}

func NewBoards(boards []domain.Board) []Board {
	out := make([]Board, len(boards))
	for i, b := range boards {
		out[i] = Board{Name: b.Name, CreatedOn: b.CreatedOn}
	}
	return out
}
