package twitch

import "github.com/nicklaw5/helix/v2"

// BadgeReader represents the subset of Twitch Helix API operations required to fetch
// the chat badge catalogs that 'badges' tags are resolved against
type BadgeReader interface {
	GetGlobalChatBadges() (*helix.GetChatBadgeResponse, error)
	GetChannelChatBadges(params *helix.GetChatBadgeParams) (*helix.GetChatBadgeResponse, error)
}

// UserReader represents the subset of Twitch Helix API operations required to look up
// a user by login
type UserReader interface {
	GetUsers(params *helix.UsersParams) (*helix.UsersResponse, error)
}

// Client is the read-only view of the Helix API used by this service; *helix.Client
// satisfies it
type Client interface {
	BadgeReader
	UserReader
}

var _ Client = (*helix.Client)(nil)
