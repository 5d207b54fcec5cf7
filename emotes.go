package tmi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// EmoteImages holds the CDN URLs for an emote at each of its sizes
type EmoteImages struct {
	X1 string `json:"1x"`
	X2 string `json:"2x"`
	X3 string `json:"3x"`
}

// Occurrence is a single use of an emote within a message. Offsets are measured in
// UTF-16 code units of the message text.
type Occurrence struct {
	StartPos int `json:"startPos"`
	Length   int `json:"length"`
}

// Text returns the portion of message covered by this occurrence, or "" if the
// occurrence falls outside the message
func (o Occurrence) Text(message string) string {
	units := utf16.Encode([]rune(message))
	if o.StartPos < 0 || o.Length < 0 || o.StartPos > len(units) || o.Length > len(units)-o.StartPos {
		return ""
	}
	return string(utf16.Decode(units[o.StartPos : o.StartPos+o.Length]))
}

// Emote is an emote referenced by ID, along with every place it's used in the message
type Emote struct {
	ID     string       `json:"id"`
	Usage  []Occurrence `json:"usage"`
	Images EmoteImages  `json:"images"`
}

// EmoteURL formats the URL of the dark-theme image for the given emote ID, where scale
// is one of "1.0", "2.0", or "3.0"
func EmoteURL(id string, scale string) string {
	return fmt.Sprintf("https://static-cdn.jtvnw.net/emoticons/v2/%s/default/dark/%s", id, scale)
}

func newEmote(id string) Emote {
	return Emote{
		ID:    id,
		Usage: []Occurrence{},
		Images: EmoteImages{
			X1: EmoteURL(id, "1.0"),
			X2: EmoteURL(id, "2.0"),
			X3: EmoteURL(id, "3.0"),
		},
	}
}

// decodeEmotes parses an 'id:start-end,start-end/id:start-end' tag value. Ranges are
// inclusive; any range that can't be parsed is skipped rather than failing the line.
func decodeEmotes(value string) []Emote {
	emotes := make([]Emote, 0, strings.Count(value, "/")+1)
	for _, group := range strings.Split(value, "/") {
		if group == "" {
			continue
		}
		id, ranges, _ := strings.Cut(group, ":")
		if id == "" {
			continue
		}
		emote := newEmote(id)
		for _, r := range strings.Split(ranges, ",") {
			if occurrence, ok := parseRange(r); ok {
				emote.Usage = append(emote.Usage, occurrence)
			}
		}
		emotes = append(emotes, emote)
	}
	return emotes
}

// maxEmoteOffset bounds the offsets accepted in an emote range; Twitch messages are
// far shorter than this
const maxEmoteOffset = math.MaxInt32

func parseRange(r string) (Occurrence, bool) {
	startStr, endStr, found := strings.Cut(r, "-")
	if !found {
		return Occurrence{}, false
	}
	start, err := strconv.Atoi(startStr)
	if err != nil || start < 0 {
		return Occurrence{}, false
	}
	end, err := strconv.Atoi(endStr)
	if err != nil || end < start || end > maxEmoteOffset {
		return Occurrence{}, false
	}
	return Occurrence{StartPos: start, Length: end - start + 1}, true
}
