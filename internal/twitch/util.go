package twitch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nicklaw5/helix/v2"
)

// ErrChannelNotFound is returned when a channel login does not match any Twitch user
var ErrChannelNotFound = errors.New("channel not found")

// GetChannelUserId resolves a channel's login name to the user ID of its broadcaster
func GetChannelUserId(r UserReader, channelName string) (string, error) {
	res, err := r.GetUsers(&helix.UsersParams{
		Logins: []string{channelName},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get user ID: %w", err)
	}
	if res.StatusCode != 200 {
		return "", fmt.Errorf("got response %d from get users request: %s", res.StatusCode, res.ErrorMessage)
	}
	if len(res.Data.Users) == 0 {
		return "", fmt.Errorf("%w: %s", ErrChannelNotFound, channelName)
	}
	if len(res.Data.Users) != 1 {
		return "", fmt.Errorf("got %d results from get users request; expected exactly 1", len(res.Data.Users))
	}
	return res.Data.Users[0].ID, nil
}

// NormalizeChannelName converts a channel name as a user might type it ('#Dallas') to
// the login form used on the wire ('dallas')
func NormalizeChannelName(channelName string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(channelName), "#"))
}

// ParseChannelNames splits a comma-separated list of channel names, normalizing each
// and discarding blanks and duplicates
func ParseChannelNames(s string) []string {
	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		name := NormalizeChannelName(part)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
