package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anonbb/anonbb/internal/api"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	body, err := parseBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.board.CreateThread(board, body.Text, body.DeletePassword); err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, "/b/"+board+"/", http.StatusSeeOther)
}

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	threads, err := h.board.RecentThreads(board)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, api.NewThreads(threads))
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	body, err := parseBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.board.DeleteThread(board, body.ThreadId, body.DeletePassword); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *Handler) ReportThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	body, err := parseBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.board.ReportThread(board, body.ThreadId); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}
