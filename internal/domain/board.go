package domain

import (
	"time"
)

// Board is a namespace key, not a content entity. Threads live in the
// board's own storage namespace, created implicitly on first use.
type Board struct {
	Name      BoardName
	CreatedOn time.Time
}
