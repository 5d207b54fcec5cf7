package twitch

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nicklaw5/helix/v2"
)

const requestTimeout = 10 * time.Second

// NewClient initializes a Helix API client authenticated with an app access token,
// which is sufficient for the public, read-only endpoints used to look up users and
// chat badges
func NewClient(config Config) (*helix.Client, error) {
	c, err := helix.NewClient(&helix.Options{
		ClientID:     config.ClientId,
		ClientSecret: config.ClientSecret,
		HTTPClient:   &http.Client{Timeout: requestTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Twitch API client: %w", err)
	}

	res, err := c.RequestAppAccessToken(nil)
	if err == nil && res.StatusCode != http.StatusOK {
		err = fmt.Errorf("got status %d: %s", res.StatusCode, res.ErrorMessage)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get app access token from Twitch API: %w", err)
	}

	c.SetAppAccessToken(res.Data.AccessToken)
	return c, nil
}
