package badges

import (
	"context"
	"fmt"

	"github.com/nicklaw5/helix/v2"

	"github.com/golden-vcr/tmi"
	"github.com/golden-vcr/tmi/internal/twitch"
)

// FetchGlobal requests the set of chat badges that are available in every channel
func FetchGlobal(ctx context.Context, r twitch.BadgeReader) (tmi.BadgeCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := r.GetGlobalChatBadges()
	if err != nil {
		return nil, fmt.Errorf("failed to get global chat badges: %w", err)
	}
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("got response %d from get global chat badges request: %s", res.StatusCode, res.ErrorMessage)
	}
	return toCatalog(res.Data.Badges), nil
}

// FetchChannel requests the custom chat badges (typically subscriber and bits badges)
// defined by the broadcaster with the given user ID
func FetchChannel(ctx context.Context, r twitch.BadgeReader, broadcasterId string) (tmi.BadgeCatalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := r.GetChannelChatBadges(&helix.GetChatBadgeParams{
		BroadcasterID: broadcasterId,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get channel chat badges: %w", err)
	}
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("got response %d from get channel chat badges request: %s", res.StatusCode, res.ErrorMessage)
	}
	return toCatalog(res.Data.Badges), nil
}

func toCatalog(sets []helix.ChatBadge) tmi.BadgeCatalog {
	catalog := make(tmi.BadgeCatalog, len(sets))
	for _, set := range sets {
		versions, ok := catalog[set.SetID]
		if !ok {
			versions = make(map[string]tmi.BadgeImages, len(set.Versions))
			catalog[set.SetID] = versions
		}
		for _, v := range set.Versions {
			versions[v.ID] = tmi.BadgeImages{
				X1: v.ImageUrl1x,
				X2: v.ImageUrl2x,
				X4: v.ImageUrl4x,
			}
		}
	}
	return catalog
}
