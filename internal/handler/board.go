package handler

import (
	"net/http"

	"github.com/anonbb/anonbb/internal/api"
)

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.Boards()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, api.NewBoards(boards))
}
