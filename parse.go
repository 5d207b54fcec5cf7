package tmi

import (
	"strconv"
	"strings"
)

// Parse converts a single raw line into a typed Command, resolving badges against the
// given catalogs. Parse is total: a line that can't be understood yields *Unknown.
// Catalogs are only read, so any number of lines may be parsed concurrently against the
// same catalogs.
func Parse(line string, catalogs Catalogs) Command {
	s := splitSegments(strings.TrimSpace(line))
	source := parseSource(s.source)

	tags := Tags{}
	if s.hasTags {
		tags = decodeTags(s.tags, s.channel, &catalogs)
	}
	return build(s, source, tags)
}

// ParseBatch parses a block of LF- or CRLF-separated lines, returning a Command for
// each non-blank line in the order received
func ParseBatch(raw string, catalogs Catalogs) []Command {
	lines := strings.Split(raw, "\n")
	commands := make([]Command, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		commands = append(commands, Parse(line, catalogs))
	}
	return commands
}

func build(s segments, source *Source, tags Tags) Command {
	verb := strings.ToUpper(s.command)
	switch Verb(verb) {
	case VerbClearChat:
		return &ClearChat{
			Source:  source,
			Channel: s.channel,
			User:    trimTrailing(s.param),
			Tags: ClearChatTags{
				BanDuration:  tags.OptionalInt("banDuration"),
				RoomID:       tags.String("roomId"),
				TargetUserID: tags.String("targetUserId"),
				TmiSentTs:    tags.Time("tmiSentTs"),
			},
			TagMap: tags,
		}
	case VerbClearMessage:
		return &ClearMessage{
			Source:  source,
			Channel: s.channel,
			Text:    trimTrailing(s.param),
			Tags: ClearMessageTags{
				Login:       tags.String("login"),
				RoomID:      tags.String("roomId"),
				TargetMsgID: tags.String("targetMsgId"),
				TmiSentTs:   tags.Time("tmiSentTs"),
			},
			TagMap: tags,
		}
	case VerbGlobalUserState:
		return &GlobalUserState{
			Source: source,
			Tags: GlobalUserStateTags{
				BadgeInfo:   tags.BadgeInfo(),
				Badges:      tags.Badges(),
				Color:       tags.String("color"),
				DisplayName: tags.String("displayName"),
				EmoteSets:   tags.String("emoteSets"),
				Turbo:       tags.Bool("turbo"),
				UserID:      tags.String("userId"),
				UserType:    tags.UserType(),
			},
			TagMap: tags,
		}
	case VerbNotice:
		return &Notice{
			Source:  source,
			Channel: s.channel,
			Text:    trimTrailing(s.param),
			Tags: NoticeTags{
				MsgID:        tags.String("msgId"),
				TargetUserID: tags.String("targetUserId"),
			},
			TagMap: tags,
		}
	case VerbPrivateMessage:
		return &PrivateMessage{
			Source:  source,
			Channel: s.channel,
			Text:    trimTrailing(s.param),
			Tags: PrivateMessageTags{
				BadgeInfo:              tags.BadgeInfo(),
				Badges:                 tags.Badges(),
				Bits:                   tags.OptionalInt("bits"),
				Color:                  tags.String("color"),
				DisplayName:            tags.String("displayName"),
				Emotes:                 tags.Emotes(),
				FirstMsg:               tags.OptionalBool("firstMsg"),
				ID:                     tags.String("id"),
				Mod:                    tags.Bool("mod"),
				RoomID:                 tags.String("roomId"),
				Subscriber:             tags.Bool("subscriber"),
				TmiSentTs:              tags.Time("tmiSentTs"),
				Turbo:                  tags.Bool("turbo"),
				UserID:                 tags.String("userId"),
				UserType:               tags.UserType(),
				Vip:                    tags.OptionalBool("vip"),
				ReplyParentMsgID:       tags.String("replyParentMsgId"),
				ReplyParentUserID:      tags.String("replyParentUserId"),
				ReplyParentUserLogin:   tags.String("replyParentUserLogin"),
				ReplyParentDisplayName: tags.String("replyParentDisplayName"),
				ReplyParentMsgBody:     UnescapeTagValue(tags.String("replyParentMsgBody")),
			},
			TagMap: tags,
		}
	case VerbRoomState:
		return &RoomState{
			Source:  source,
			Channel: s.channel,
			Tags: RoomStateTags{
				EmoteOnly:     tags.OptionalBool("emoteOnly"),
				FollowersOnly: tags.OptionalInt("followersOnly"),
				R9K:           tags.OptionalBool("r9k"),
				RoomID:        tags.String("roomId"),
				Slow:          tags.OptionalBool("slow"),
				SubsOnly:      tags.OptionalBool("subsOnly"),
			},
			TagMap: tags,
		}
	case VerbUserNotice:
		return buildUserNotice(UserNotice{
			Source:  source,
			Channel: s.channel,
			Kind:    UserNoticeKind(tags.String("msgId")),
			Text:    trimTrailing(s.param),
			Tags: UserNoticeTags{
				BadgeInfo:   tags.BadgeInfo(),
				Badges:      tags.Badges(),
				Color:       tags.String("color"),
				DisplayName: tags.String("displayName"),
				Emotes:      tags.Emotes(),
				ID:          tags.String("id"),
				Login:       tags.String("login"),
				Mod:         tags.Bool("mod"),
				MsgID:       UserNoticeKind(tags.String("msgId")),
				RoomID:      tags.String("roomId"),
				Subscriber:  tags.Bool("subscriber"),
				SystemMsg:   tags.String("systemMsg"),
				TmiSentTs:   tags.Time("tmiSentTs"),
				Turbo:       tags.Bool("turbo"),
				UserID:      tags.String("userId"),
				UserType:    tags.UserType(),
			},
			TagMap: tags,
		})
	case VerbUserState:
		return &UserState{
			Source:  source,
			Channel: s.channel,
			Tags: UserStateTags{
				BadgeInfo:   tags.BadgeInfo(),
				Badges:      tags.Badges(),
				Color:       tags.String("color"),
				DisplayName: tags.String("displayName"),
				EmoteSets:   tags.String("emoteSets"),
				ID:          tags.String("id"),
				Mod:         tags.Bool("mod"),
				Subscriber:  tags.Bool("subscriber"),
				Turbo:       tags.Bool("turbo"),
				UserType:    tags.UserType(),
			},
			TagMap: tags,
		}
	case VerbWhisper:
		// 'WHISPER <user> :<message>'
		user, message, _ := strings.Cut(s.param, " ")
		return &Whisper{
			Source:   source,
			FromUser: user,
			Message:  trimTrailing(message),
			Tags: WhisperTags{
				Badges:      tags.Badges(),
				Color:       tags.String("color"),
				DisplayName: tags.String("displayName"),
				Emotes:      tags.Emotes(),
				MessageID:   tags.String("messageId"),
				ThreadID:    tags.String("threadId"),
				Turbo:       tags.Bool("turbo"),
				UserID:      tags.String("userId"),
				UserType:    tags.UserType(),
			},
			TagMap: tags,
		}
	case VerbHostTarget:
		return buildHostTarget(s, source)
	case VerbReconnect:
		return &Reconnect{Source: source}
	case VerbJoin:
		return &Join{Source: source, Channel: s.channel, User: userName(source)}
	case VerbPart:
		return &Part{Source: source, Channel: s.channel, User: userName(source)}
	case VerbPing:
		return &Ping{Source: source, Token: trimTrailing(s.param)}
	}

	if isInfoCode(verb) {
		return &Info{Source: source, Code: verb, Params: s.param}
	}
	return &Unknown{
		Source:  source,
		Command: s.command,
		Channel: s.channel,
		Params:  s.param,
		TagMap:  tags,
	}
}

// buildHostTarget handles ':<hosted-channel> <viewers>', where a hosted channel of '-'
// means that hosting has ended
func buildHostTarget(s segments, source *Source) *HostTarget {
	fields := strings.Fields(trimTrailing(s.param))
	cmd := &HostTarget{
		Source:         source,
		HostingChannel: s.channel,
	}
	if len(fields) > 0 && fields[0] != "-" {
		hosted := fields[0]
		cmd.HostedChannel = &hosted
	}
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			cmd.NumberOfViewers = n
		}
	}
	return cmd
}

// isInfoCode reports whether verb is a three-digit numeric reply or a capability
// acknowledgement
func isInfoCode(verb string) bool {
	if verb == string(VerbCapability) {
		return true
	}
	if len(verb) != 3 {
		return false
	}
	for i := 0; i < len(verb); i++ {
		if verb[i] < '0' || verb[i] > '9' {
			return false
		}
	}
	return true
}

func userName(source *Source) string {
	if source == nil {
		return ""
	}
	return source.UserName
}
