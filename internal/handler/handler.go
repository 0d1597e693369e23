package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/anonbb/anonbb/internal/errors"
	"github.com/anonbb/anonbb/internal/logger"
	"github.com/anonbb/anonbb/internal/service"
)

type Handler struct {
	board service.BoardService
}

func New(board service.BoardService) *Handler {
	return &Handler{board}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// moderationBody carries the fields of the original form-encoded surface.
// JSON bodies are accepted too.
type moderationBody struct {
	ThreadId       string `json:"thread_id"`
	ReplyId        string `json:"reply_id"`
	Text           string `json:"text"`
	DeletePassword string `json:"delete_password"`
}

func parseBody(r *http.Request) (moderationBody, error) {
	var body moderationBody
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return body, &errors.ErrorWithStatusCode{Message: "body is invalid json", StatusCode: http.StatusBadRequest}
		}
		return body, nil
	}
	// ParseForm ignores DELETE/PUT bodies, so read the form data directly.
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return body, &errors.ErrorWithStatusCode{Message: "failed to read body", StatusCode: http.StatusBadRequest}
	}
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return body, &errors.ErrorWithStatusCode{Message: "body is not a valid form", StatusCode: http.StatusBadRequest}
	}
	body.ThreadId = values.Get("thread_id")
	body.ReplyId = values.Get("reply_id")
	body.Text = values.Get("text")
	body.DeletePassword = values.Get("delete_password")
	return body, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// writeError maps typed outcomes to their status codes. Anything untyped is
// a storage failure: logged here, surfaced as an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, e.Message, e.StatusCode)
		return
	}
	logger.Log.Error("unexpected storage error", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeSuccess(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}
