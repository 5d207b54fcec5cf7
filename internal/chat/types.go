package chat

// LogEventType is an abstraction on top of chat commands, presenting the frontend with
// a simplified set of events that are germane to rendering a channel's chat log
type LogEventType string

const (
	// LogEventTypeMessage indicates that a new chat line should be displayed
	LogEventTypeMessage LogEventType = "message"
	// LogEventTypeDeletion indicates that one or more previous lines should be deleted
	LogEventTypeDeletion LogEventType = "deletion"
	// LogEventTypeClear indicates that all lines should be deleted from the log
	LogEventTypeClear LogEventType = "clear"
)

// LogEvent is an event in a Twitch channel's chat that the chat log UI needs to know
// about
type LogEvent struct {
	Type     LogEventType `json:"type"`
	Channel  string       `json:"channel"`
	Message  *LogMessage  `json:"message,omitempty"`
	Deletion *LogDeletion `json:"deletion,omitempty"`
}

// LogMessage is the payload for an event with type 'message'. Each emote in Text is
// replaced with a placeholder ('$0', '$1', etc.) indexing into Emotes, and any literal
// '$' is escaped as '$$'.
type LogMessage struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Color    string         `json:"color"`
	Text     string         `json:"text"`
	Emotes   []EmoteDetails `json:"emotes"`
	Badges   []BadgeDetails `json:"badges"`
	Bits     int            `json:"bits,omitempty"`
}

type EmoteDetails struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// BadgeDetails identifies the image to display for one of the user's badges
type BadgeDetails struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// LogDeletion is the payload for an event with type 'deletion'
type LogDeletion struct {
	MessageIDs []string `json:"messageIds"`
}
