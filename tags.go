package tmi

import (
	"strconv"
	"strings"
	"time"
)

// Tags is the decoded form of a line's tag block, keyed by camel-cased tag name (e.g.
// 'room-id' becomes 'roomId'). Each value is one of: string, int, bool, time.Time,
// BadgeInfo, []Badge, or []Emote, depending on the key. A tag with an empty value is
// absent from the map, except for 'badges' and 'emotes', which decode to empty lists.
type Tags map[string]any

// UserType identifies a user's privilege level across Twitch
type UserType string

const (
	UserTypeNormal    UserType = "normal"
	UserTypeAdmin     UserType = "admin"
	UserTypeGlobalMod UserType = "global_mod"
	UserTypeStaff     UserType = "staff"
)

// tagDecoder converts a non-empty raw tag value into its typed representation,
// returning false if the value is malformed, in which case the tag is treated as absent
type tagDecoder func(value string) (any, bool)

// tagDecoders declares how each known tag is decoded; any key not listed here (and not
// matched by decoderFor's prefix rules) is kept as a plain string
var tagDecoders = map[string]tagDecoder{
	"turbo":      decodeBool,
	"mod":        decodeBool,
	"subscriber": decodeBool,
	"vip":        decodeBool,
	"emoteOnly":  decodeBool,
	"r9k":        decodeBool,
	"slow":       decodeBool,
	"subsOnly":   decodeBool,
	"firstMsg":   decodeBool,

	"bits":                     decodeInt,
	"banDuration":              decodeInt,
	"followersOnly":            decodeInt,
	"msgParamCumulativeMonths": decodeInt,
	"msgParamMonths":           decodeInt,
	"msgParamViewerCount":      decodeInt,
	"msgParamThreshold":        decodeInt,
	"msgParamGiftMonths":       decodeInt,
	"msgParamStreakMonths":     decodeInt,
	"msgParamPromoGiftTotal":   decodeInt,
	"msgParamMassGiftCount":    decodeInt,
	"msgParamSenderCount":      decodeInt,

	"tmiSentTs": decodeTimestamp,
	"badgeInfo": decodeBadgeInfo,
	"userType":  decodeUserType,
}

func decoderFor(key string) tagDecoder {
	if decode, ok := tagDecoders[key]; ok {
		return decode
	}
	if strings.HasPrefix(key, "msgParamShouldShareStreak") {
		return decodeBool
	}
	return nil
}

// decodeTags parses a raw 'key=value;key=value' tag block. Badges are resolved against
// catalogs in the context of the given channel.
func decodeTags(raw string, channel string, catalogs *Catalogs) Tags {
	tags := make(Tags)
	for _, entry := range strings.Split(raw, ";") {
		if entry == "" {
			continue
		}
		rawKey, value, _ := strings.Cut(entry, "=")
		key := normalizeTagKey(rawKey)

		switch key {
		case "badges":
			tags[key] = catalogs.decodeBadges(channel, value)
			continue
		case "emotes":
			tags[key] = decodeEmotes(value)
			continue
		}

		if value == "" {
			delete(tags, key)
			continue
		}
		decode := decoderFor(key)
		if decode == nil {
			tags[key] = value
			continue
		}
		if decoded, ok := decode(value); ok {
			tags[key] = decoded
		} else {
			delete(tags, key)
		}
	}
	return tags
}

// normalizeTagKey converts a hyphenated tag name to camel case: 'msg-param-sub-plan'
// becomes 'msgParamSubPlan'
func normalizeTagKey(key string) string {
	if !strings.Contains(key, "-") {
		return key
	}
	parts := strings.Split(key, "-")
	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func decodeBool(value string) (any, bool) {
	return value == "1", true
}

func decodeInt(value string) (any, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, false
	}
	return n, true
}

func decodeTimestamp(value string) (any, bool) {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, false
	}
	return time.UnixMilli(ms).UTC(), true
}

// decodeBadgeInfo parses the subscription length out of e.g. 'subscriber/8'. Only the
// first badge-info entry is considered.
func decodeBadgeInfo(value string) (any, bool) {
	_, after, found := strings.Cut(value, "/")
	if !found {
		return nil, false
	}
	after, _, _ = strings.Cut(after, ",")
	n, err := strconv.Atoi(after)
	if err != nil {
		return nil, false
	}
	return BadgeInfo{SubLength: n}, true
}

func decodeUserType(value string) (any, bool) {
	return UserType(value), true
}

// Has reports whether the tag is present with a non-empty value
func (t Tags) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// String returns the value of a pass-through tag, or "" if absent
func (t Tags) String(key string) string {
	s, _ := t[key].(string)
	return s
}

// Bool returns the value of a boolean tag, treating absence as false
func (t Tags) Bool(key string) bool {
	b, _ := t[key].(bool)
	return b
}

// OptionalBool returns the value of a boolean tag, or nil if absent
func (t Tags) OptionalBool(key string) *bool {
	b, ok := t[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

// Int returns the value of a numeric tag, treating absence as 0
func (t Tags) Int(key string) int {
	n, _ := t[key].(int)
	return n
}

// OptionalInt returns the value of a numeric tag, or nil if absent
func (t Tags) OptionalInt(key string) *int {
	n, ok := t[key].(int)
	if !ok {
		return nil
	}
	return &n
}

// Time returns the value of a timestamp tag, or the zero time if absent
func (t Tags) Time(key string) time.Time {
	ts, _ := t[key].(time.Time)
	return ts
}

func (t Tags) BadgeInfo() *BadgeInfo {
	info, ok := t["badgeInfo"].(BadgeInfo)
	if !ok {
		return nil
	}
	return &info
}

func (t Tags) Badges() []Badge {
	badges, _ := t["badges"].([]Badge)
	return badges
}

func (t Tags) Emotes() []Emote {
	emotes, _ := t["emotes"].([]Emote)
	return emotes
}

// UserType returns the decoded 'user-type' tag. Twitch sends an empty value for
// regular users, so absence is reported as UserTypeNormal.
func (t Tags) UserType() UserType {
	userType, ok := t["userType"].(UserType)
	if !ok {
		return UserTypeNormal
	}
	return userType
}

// UnescapeTagValue reverses the IRCv3 escaping applied to tag values, e.g. turning
// '15\sraiders' into '15 raiders'
func UnescapeTagValue(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(value) {
			break
		}
		switch value[i] {
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}
