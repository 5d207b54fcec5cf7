package chat

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/golden-vcr/tmi"
)

// newMessageEvent constructs a LogEvent with type 'message' given a PRIVMSG
func newMessageEvent(m *tmi.PrivateMessage) *LogEvent {
	text, emotes := substituteEmotes(m.Text, m.Tags.Emotes)
	username := m.Tags.DisplayName
	if username == "" && m.Source != nil {
		username = m.Source.UserName
	}
	bits := 0
	if m.Tags.Bits != nil {
		bits = *m.Tags.Bits
	}
	return &LogEvent{
		Type:    LogEventTypeMessage,
		Channel: m.Channel,
		Message: &LogMessage{
			ID:       m.Tags.ID,
			Username: username,
			Color:    m.Tags.Color,
			Text:     text,
			Emotes:   emotes,
			Badges:   formatBadges(m.Tags.Badges),
			Bits:     bits,
		},
	}
}

// emoteSpan is a single occurrence of the emote at the given index
type emoteSpan struct {
	index int
	start int
	end   int
}

// substituteEmotes replaces every emote occurrence in the message with a placeholder
// ('$0', '$1', etc.) indexing into the returned list, escaping any other '$' as '$$'.
// Occurrences are located by their UTF-16 offsets, so an emote's name is only replaced
// where Twitch actually rendered it as an emote.
func substituteEmotes(message string, emotes []tmi.Emote) (string, []EmoteDetails) {
	units := utf16.Encode([]rune(message))
	details := make([]EmoteDetails, 0, len(emotes))
	spans := make([]emoteSpan, 0, len(emotes))
	for _, emote := range emotes {
		name := ""
		for _, occurrence := range emote.Usage {
			if occurrence.StartPos < 0 || occurrence.Length <= 0 || occurrence.StartPos > len(units) || occurrence.Length > len(units)-occurrence.StartPos {
				continue
			}
			end := occurrence.StartPos + occurrence.Length
			if name == "" {
				name = occurrence.Text(message)
			}
			spans = append(spans, emoteSpan{index: len(details), start: occurrence.StartPos, end: end})
		}
		details = append(details, EmoteDetails{
			Name: name,
			Url:  emote.Images.X1,
		})
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	var b strings.Builder
	pos := 0
	for _, span := range spans {
		if span.start < pos {
			continue
		}
		b.WriteString(escapeText(units[pos:span.start]))
		fmt.Fprintf(&b, "$%d", span.index)
		pos = span.end
	}
	b.WriteString(escapeText(units[pos:]))
	return b.String(), details
}

func escapeText(units []uint16) string {
	return strings.ReplaceAll(string(utf16.Decode(units)), "$", "$$")
}

// formatBadges lists the badges that resolved to an image, in the order the user
// displays them
func formatBadges(badges []tmi.Badge) []BadgeDetails {
	details := make([]BadgeDetails, 0, len(badges))
	for _, badge := range badges {
		if badge.Images == nil || badge.Images.X1 == "" {
			continue
		}
		details = append(details, BadgeDetails{
			Name: badge.Name,
			Url:  badge.Images.X1,
		})
	}
	return details
}
