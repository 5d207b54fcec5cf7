package tmi

import "strings"

// BadgeImages holds the URLs of a badge's artwork at each of the sizes Twitch serves
type BadgeImages struct {
	X1 string `json:"1x"`
	X2 string `json:"2x"`
	X4 string `json:"4x"`
}

// BadgeCatalog maps a badge set name (e.g. 'subscriber') to the images for each
// version of that badge (e.g. '6'), as returned by the Twitch API
type BadgeCatalog map[string]map[string]BadgeImages

// lookup returns the images for the given badge name and version, if present
func (c BadgeCatalog) lookup(name, id string) (BadgeImages, bool) {
	versions, ok := c[name]
	if !ok {
		return BadgeImages{}, false
	}
	images, ok := versions[id]
	return images, ok
}

// Catalogs are the lookup tables against which badge tags are resolved. Global
// applies everywhere; Channels is keyed by channel login and holds badges (typically
// custom subscriber and bits badges) that override global badges within that channel.
//
// Catalogs are only ever read while parsing: callers that refresh them must install new
// maps rather than mutating maps that may be in use.
type Catalogs struct {
	Global   BadgeCatalog            `json:"global"`
	Channels map[string]BadgeCatalog `json:"channels"`
}

// Badge is a single chat badge attached to a user, resolved against the catalogs
type Badge struct {
	Name string `json:"name"`
	ID   string `json:"id"`

	// Images is nil if neither the channel's catalog nor the global catalog has an
	// entry for this badge
	Images *BadgeImages `json:"images,omitempty"`

	// ChannelScoped is true if the images came from the channel's own catalog
	ChannelScoped bool `json:"channelScoped,omitempty"`
}

// resolveBadge builds a Badge from its name and version, preferring the catalog of the
// channel in which the line was sent over the global catalog
func (c *Catalogs) resolveBadge(channel, name, id string) Badge {
	badge := Badge{Name: name, ID: id}
	if channel != "" {
		if images, ok := c.Channels[channel].lookup(name, id); ok {
			badge.Images = &images
			badge.ChannelScoped = true
			return badge
		}
	}
	if images, ok := c.Global.lookup(name, id); ok {
		badge.Images = &images
	}
	return badge
}

// decodeBadges parses a 'name/id,name/id' tag value into resolved badges
func (c *Catalogs) decodeBadges(channel, value string) []Badge {
	badges := make([]Badge, 0, strings.Count(value, ",")+1)
	for _, raw := range strings.Split(value, ",") {
		if raw == "" {
			continue
		}
		name, id, _ := strings.Cut(raw, "/")
		if name == "" {
			continue
		}
		badges = append(badges, c.resolveBadge(channel, name, id))
	}
	return badges
}

// BadgeInfo carries the metadata from the 'badge-info' tag
type BadgeInfo struct {
	// SubLength is the exact number of months the user has been subscribed
	SubLength int `json:"subLength"`
}
