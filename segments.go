package tmi

import "strings"

// segments holds the raw, undecoded pieces of a single protocol line, as split apart by
// splitSegments
type segments struct {
	tags     string
	hasTags  bool
	source   string
	command  string
	channel  string
	param    string
	hasParam bool
}

// splitSegments tokenizes a trimmed line into its tag block, source, command verb,
// channel, and trailing parameter string, strictly left-to-right. It never fails:
// malformed input simply leaves later segments empty.
func splitSegments(line string) segments {
	var s segments
	rest := line

	// '@key=value;key=value ' carries Twitch-specific tags
	if strings.HasPrefix(rest, "@") {
		s.hasTags = true
		s.tags, rest = cutSpace(rest[1:])
	}

	// ':nick!user@host ' identifies the origin of the line
	if strings.HasPrefix(rest, ":") {
		s.source, rest = cutSpace(rest[1:])
	}

	// The verb is mandatory; if nothing follows it, we're done
	sp := strings.IndexByte(rest, ' ')
	if sp < 0 {
		s.command = rest
		return s
	}
	s.command = rest[:sp]
	rest = rest[sp+1:]

	if strings.HasPrefix(rest, "#") {
		sp := strings.IndexByte(rest, ' ')
		if sp < 0 {
			s.channel = rest[1:]
			return s
		}
		s.channel = rest[1:sp]
		rest = rest[sp+1:]
	}

	s.param = rest
	s.hasParam = true
	return s
}

// cutSpace splits s at its first space, returning everything before it and everything
// after it. If there's no space, all of s is returned as the head.
func cutSpace(s string) (string, string) {
	head, tail, _ := strings.Cut(s, " ")
	return head, tail
}

// Source identifies the origin of a line: either a bare host such as 'tmi.twitch.tv',
// or a user prefix of the form 'nick!user@host'
type Source struct {
	Host     string `json:"host"`
	UserName string `json:"userName,omitempty"`
}

// parseSource decodes a raw source segment, returning nil if the line had no source
func parseSource(raw string) *Source {
	if raw == "" {
		return nil
	}
	at := strings.IndexByte(raw, '@')
	if at < 0 {
		return &Source{Host: raw}
	}
	user := raw[:at]
	if bang := strings.IndexByte(user, '!'); bang >= 0 {
		user = user[:bang]
	}
	return &Source{
		Host:     raw[at+1:],
		UserName: user,
	}
}

// trimTrailing removes the single ':' that conventionally marks the start of free text
// in the trailing parameter
func trimTrailing(param string) string {
	return strings.TrimPrefix(param, ":")
}
