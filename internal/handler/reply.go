package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anonbb/anonbb/internal/api"
	"github.com/anonbb/anonbb/internal/errors"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	body, err := parseBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.board.CreateReply(board, body.ThreadId, body.Text, body.DeletePassword); err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, "/b/"+board+"/"+body.ThreadId, http.StatusSeeOther)
}

// GetThread returns the full thread with all replies. A missing thread is a
// null body, not an error; that is the contract of the original surface.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	threadId := r.URL.Query().Get("thread_id")

	thread, err := h.board.GetThread(board, threadId)
	if err != nil {
		if errors.IsNotFound(err) {
			writeJSON(w, nil)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, api.NewThread(thread))
}

func (h *Handler) RedactReply(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	body, err := parseBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.board.RedactReply(board, body.ThreadId, body.ReplyId, body.DeletePassword); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *Handler) ReportReply(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	body, err := parseBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.board.ReportReply(board, body.ThreadId, body.ReplyId); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}
