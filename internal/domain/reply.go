package domain

import (
	"time"
)

// RedactedText replaces a reply's body on redaction. The reply record itself
// is never removed.
const RedactedText = "[deleted]"

// to iterate thru layers: handler -> service -> storage
type ReplyCreationData struct {
	Board          BoardName
	Thread         ThreadId
	Text           string
	DeletePassword string
}

// Reply is owned by exactly one thread and persisted embedded in it. The json
// tags define the storage encoding of the embedded array, not the wire format.
type Reply struct {
	Id                 ReplyId   `json:"id"`
	Text               string    `json:"text"`
	CreatedOn          time.Time `json:"created_on"`
	DeletePasswordHash string    `json:"delete_password_hash"`
	Reported           bool      `json:"reported"`
}
