package archive

import (
	"time"

	"github.com/google/uuid"
)

// History is the response body for GET /{channel}
type History struct {
	Channel  string    `json:"channel"`
	Messages []Message `json:"messages"`
}

// Message is a single archived chat message. Messages that have since been deleted by
// a moderator are never returned.
type Message struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Color       string    `json:"color"`
	Text        string    `json:"text"`
	Badges      []string  `json:"badges"`
	EmoteIds    []string  `json:"emoteIds"`
	Bits        int       `json:"bits,omitempty"`
	SentAt      time.Time `json:"sentAt"`
}
