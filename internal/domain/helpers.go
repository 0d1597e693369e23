package domain

import (
	"github.com/google/uuid"
)

// NewPostId returns a collision-resistant identifier for threads and replies.
func NewPostId() string {
	return uuid.NewString()
}
