package tmi

import "time"

// Verb is the protocol command keyword that identifies the type of a line
type Verb string

const (
	VerbClearChat       Verb = "CLEARCHAT"
	VerbClearMessage    Verb = "CLEARMSG"
	VerbGlobalUserState Verb = "GLOBALUSERSTATE"
	VerbNotice          Verb = "NOTICE"
	VerbPrivateMessage  Verb = "PRIVMSG"
	VerbRoomState       Verb = "ROOMSTATE"
	VerbUserNotice      Verb = "USERNOTICE"
	VerbUserState       Verb = "USERSTATE"
	VerbWhisper         Verb = "WHISPER"
	VerbHostTarget      Verb = "HOSTTARGET"
	VerbReconnect       Verb = "RECONNECT"
	VerbJoin            Verb = "JOIN"
	VerbPart            Verb = "PART"
	VerbPing            Verb = "PING"
	VerbCapability      Verb = "CAP"

	// VerbInfo identifies numeric replies (001, 353, 366, etc.) and capability
	// acknowledgements, which are only of interest while bringing up a connection
	VerbInfo Verb = "INFO"

	// VerbUnknown identifies any line whose verb isn't otherwise supported
	VerbUnknown Verb = "UNKNOWN"
)

// Command is the typed result of parsing a single line. The set of implementations is
// closed: callers should type-switch over the pointer types declared in this package.
type Command interface {
	Verb() Verb
	command()
}

// ClearChatTags are the tags sent with CLEARCHAT
type ClearChatTags struct {
	// BanDuration is the length of a timeout in seconds, or nil for a permanent ban
	BanDuration  *int      `json:"banDuration,omitempty"`
	RoomID       string    `json:"roomId"`
	TargetUserID string    `json:"targetUserId,omitempty"`
	TmiSentTs    time.Time `json:"tmiSentTs"`
}

// ClearChat indicates that all messages in a channel, or all messages from a single
// user in that channel, have been removed
type ClearChat struct {
	Source  *Source       `json:"source,omitempty"`
	Channel string        `json:"channel"`
	Tags    ClearChatTags `json:"tags"`
	TagMap  Tags          `json:"tagMap,omitempty"`

	// User is the login of the user whose messages were cleared; if empty, the entire
	// chat was cleared
	User string `json:"user,omitempty"`
}

// ClearMessageTags are the tags sent with CLEARMSG
type ClearMessageTags struct {
	Login       string    `json:"login"`
	RoomID      string    `json:"roomId,omitempty"`
	TargetMsgID string    `json:"targetMsgId"`
	TmiSentTs   time.Time `json:"tmiSentTs"`
}

// ClearMessage indicates that a single message has been removed from a channel
type ClearMessage struct {
	Source  *Source          `json:"source,omitempty"`
	Channel string           `json:"channel"`
	Text    string           `json:"text"`
	Tags    ClearMessageTags `json:"tags"`
	TagMap  Tags             `json:"tagMap,omitempty"`
}

// GlobalUserStateTags are the tags sent with GLOBALUSERSTATE
type GlobalUserStateTags struct {
	BadgeInfo   *BadgeInfo `json:"badgeInfo,omitempty"`
	Badges      []Badge    `json:"badges"`
	Color       string     `json:"color"`
	DisplayName string     `json:"displayName"`
	EmoteSets   string     `json:"emoteSets"`
	Turbo       bool       `json:"turbo"`
	UserID      string     `json:"userId"`
	UserType    UserType   `json:"userType"`
}

// GlobalUserState describes the authenticated user, sent once after logging in
type GlobalUserState struct {
	Source *Source             `json:"source,omitempty"`
	Tags   GlobalUserStateTags `json:"tags"`
	TagMap Tags                `json:"tagMap,omitempty"`
}

// NoticeTags are the tags sent with NOTICE
type NoticeTags struct {
	MsgID        string `json:"msgId"`
	TargetUserID string `json:"targetUserId,omitempty"`
}

// Notice carries a human-readable status message from the server, e.g. the result of a
// chat command
type Notice struct {
	Source  *Source    `json:"source,omitempty"`
	Channel string     `json:"channel"`
	Text    string     `json:"text"`
	Tags    NoticeTags `json:"tags"`
	TagMap  Tags       `json:"tagMap,omitempty"`
}

// PrivateMessageTags are the tags sent with PRIVMSG
type PrivateMessageTags struct {
	BadgeInfo   *BadgeInfo `json:"badgeInfo,omitempty"`
	Badges      []Badge    `json:"badges"`
	Bits        *int       `json:"bits,omitempty"`
	Color       string     `json:"color"`
	DisplayName string     `json:"displayName"`
	Emotes      []Emote    `json:"emotes"`
	FirstMsg    *bool      `json:"firstMsg,omitempty"`
	ID          string     `json:"id"`
	Mod         bool       `json:"mod"`
	RoomID      string     `json:"roomId"`
	Subscriber  bool       `json:"subscriber"`
	TmiSentTs   time.Time  `json:"tmiSentTs"`
	Turbo       bool       `json:"turbo"`
	UserID      string     `json:"userId"`
	UserType    UserType   `json:"userType"`
	Vip         *bool      `json:"vip,omitempty"`

	ReplyParentMsgID       string `json:"replyParentMsgId,omitempty"`
	ReplyParentUserID      string `json:"replyParentUserId,omitempty"`
	ReplyParentUserLogin   string `json:"replyParentUserLogin,omitempty"`
	ReplyParentDisplayName string `json:"replyParentDisplayName,omitempty"`
	ReplyParentMsgBody     string `json:"replyParentMsgBody,omitempty"`
}

// PrivateMessage is a chat message sent by a user to a channel
type PrivateMessage struct {
	Source  *Source            `json:"source,omitempty"`
	Channel string             `json:"channel"`
	Text    string             `json:"text"`
	Tags    PrivateMessageTags `json:"tags"`
	TagMap  Tags               `json:"tagMap,omitempty"`
}

// RoomStateTags are the tags sent with ROOMSTATE. Twitch sends every setting upon
// joining a channel, but only the changed setting thereafter, so each is optional.
type RoomStateTags struct {
	EmoteOnly     *bool  `json:"emoteOnly,omitempty"`
	FollowersOnly *int   `json:"followersOnly,omitempty"`
	R9K           *bool  `json:"r9k,omitempty"`
	RoomID        string `json:"roomId,omitempty"`
	Slow          *bool  `json:"slow,omitempty"`
	SubsOnly      *bool  `json:"subsOnly,omitempty"`
}

// RoomState describes a channel's chat settings
type RoomState struct {
	Source  *Source       `json:"source,omitempty"`
	Channel string        `json:"channel"`
	Tags    RoomStateTags `json:"tags"`
	TagMap  Tags          `json:"tagMap,omitempty"`
}

// UserStateTags are the tags sent with USERSTATE
type UserStateTags struct {
	BadgeInfo   *BadgeInfo `json:"badgeInfo,omitempty"`
	Badges      []Badge    `json:"badges"`
	Color       string     `json:"color"`
	DisplayName string     `json:"displayName"`
	EmoteSets   string     `json:"emoteSets"`
	ID          string     `json:"id,omitempty"`
	Mod         bool       `json:"mod"`
	Subscriber  bool       `json:"subscriber"`
	Turbo       bool       `json:"turbo"`
	UserType    UserType   `json:"userType"`
}

// UserState describes the authenticated user within a channel, sent upon joining the
// channel or sending a message to it
type UserState struct {
	Source  *Source       `json:"source,omitempty"`
	Channel string        `json:"channel"`
	Tags    UserStateTags `json:"tags"`
	TagMap  Tags          `json:"tagMap,omitempty"`
}

// WhisperTags are the tags sent with WHISPER
type WhisperTags struct {
	Badges      []Badge  `json:"badges"`
	Color       string   `json:"color"`
	DisplayName string   `json:"displayName"`
	Emotes      []Emote  `json:"emotes"`
	MessageID   string   `json:"messageId"`
	ThreadID    string   `json:"threadId"`
	Turbo       bool     `json:"turbo"`
	UserID      string   `json:"userId"`
	UserType    UserType `json:"userType"`
}

// Whisper is a private message between two users
type Whisper struct {
	Source   *Source     `json:"source,omitempty"`
	FromUser string      `json:"fromUser"`
	Message  string      `json:"message"`
	Tags     WhisperTags `json:"tags"`
	TagMap   Tags        `json:"tagMap,omitempty"`
}

// HostTarget indicates that a channel has started or stopped hosting another channel
type HostTarget struct {
	Source         *Source `json:"source,omitempty"`
	HostingChannel string  `json:"hostingChannel"`

	// HostedChannel is nil when the hosting channel has stopped hosting
	HostedChannel   *string `json:"hostedChannel"`
	NumberOfViewers int     `json:"numberOfViewers"`
}

// Reconnect indicates that the server is about to restart: the caller should
// reconnect and rejoin its channels
type Reconnect struct {
	Source *Source `json:"source,omitempty"`
}

// Join acknowledges that a user has joined a channel
type Join struct {
	Source  *Source `json:"source,omitempty"`
	Channel string  `json:"channel"`
	User    string  `json:"user,omitempty"`
}

// Part acknowledges that a user has left a channel
type Part struct {
	Source  *Source `json:"source,omitempty"`
	Channel string  `json:"channel"`
	User    string  `json:"user,omitempty"`
}

// Ping is a keepalive check: the caller must reply with 'PONG :<Token>'
type Ping struct {
	Source *Source `json:"source,omitempty"`
	Token  string  `json:"token,omitempty"`
}

// Info is a numeric reply or capability acknowledgement, used to sequence connection
// bring-up
type Info struct {
	Source *Source `json:"source,omitempty"`
	Code   string  `json:"code"`
	Params string  `json:"params,omitempty"`
}

// Unknown is any line whose verb isn't supported. Its raw pieces are retained so that
// callers can still inspect it.
type Unknown struct {
	Source  *Source `json:"source,omitempty"`
	Command string  `json:"command"`
	Channel string  `json:"channel,omitempty"`
	Params  string  `json:"params,omitempty"`
	TagMap  Tags    `json:"tagMap,omitempty"`
}

func (ClearChat) Verb() Verb       { return VerbClearChat }
func (ClearMessage) Verb() Verb    { return VerbClearMessage }
func (GlobalUserState) Verb() Verb { return VerbGlobalUserState }
func (Notice) Verb() Verb          { return VerbNotice }
func (PrivateMessage) Verb() Verb  { return VerbPrivateMessage }
func (RoomState) Verb() Verb       { return VerbRoomState }
func (UserState) Verb() Verb       { return VerbUserState }
func (Whisper) Verb() Verb         { return VerbWhisper }
func (HostTarget) Verb() Verb      { return VerbHostTarget }
func (Reconnect) Verb() Verb       { return VerbReconnect }
func (Join) Verb() Verb            { return VerbJoin }
func (Part) Verb() Verb            { return VerbPart }
func (Ping) Verb() Verb            { return VerbPing }
func (Info) Verb() Verb            { return VerbInfo }
func (Unknown) Verb() Verb         { return VerbUnknown }

func (ClearChat) command()       {}
func (ClearMessage) command()    {}
func (GlobalUserState) command() {}
func (Notice) command()          {}
func (PrivateMessage) command()  {}
func (RoomState) command()       {}
func (UserState) command()       {}
func (Whisper) command()         {}
func (HostTarget) command()      {}
func (Reconnect) command()       {}
func (Join) command()            {}
func (Part) command()            {}
func (Ping) command()            {}
func (Info) command()            {}
func (Unknown) command()         {}
