package badges

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/golden-vcr/tmi"
	"github.com/golden-vcr/tmi/internal/twitch"
)

var ErrNotYetRefreshed = errors.New("badge catalogs have not yet been fetched")

// Store holds the most recently fetched badge catalogs. Catalogs handed out by the store
// are never modified: each refresh builds new maps and swaps them in, so any number of
// goroutines may parse against a snapshot while a refresh is underway.
type Store struct {
	client twitch.Client
	logger *zap.Logger

	mu         sync.RWMutex
	catalogs   tmi.Catalogs
	channelIds map[string]string
	refreshed  bool
	lastErr    error
}

func NewStore(client twitch.Client, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		logger: logger,
		catalogs: tmi.Catalogs{
			Global:   tmi.BadgeCatalog{},
			Channels: map[string]tmi.BadgeCatalog{},
		},
		channelIds: make(map[string]string),
	}
}

// Catalogs returns a snapshot of the current catalogs, suitable for passing to
// tmi.Parse
func (s *Store) Catalogs() tmi.Catalogs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogs
}

// Status returns nil if the global catalog has been fetched and the most recent refresh
// succeeded
func (s *Store) Status() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastErr != nil {
		return s.lastErr
	}
	if !s.refreshed {
		return ErrNotYetRefreshed
	}
	return nil
}

// Join looks up the broadcaster ID for the given channel, then fetches and installs
// that channel's badges. Subsequent refreshes will include the channel.
func (s *Store) Join(ctx context.Context, channel string) error {
	broadcasterId, err := twitch.GetChannelUserId(s.client, channel)
	if err != nil {
		return fmt.Errorf("failed to resolve channel %s: %w", channel, err)
	}
	catalog, err := FetchChannel(ctx, s.client, broadcasterId)
	if err != nil {
		return fmt.Errorf("failed to fetch badges for channel %s: %w", channel, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.channelIds[channel] = broadcasterId
	channels := make(map[string]tmi.BadgeCatalog, len(s.catalogs.Channels)+1)
	for k, v := range s.catalogs.Channels {
		channels[k] = v
	}
	channels[channel] = catalog
	s.catalogs = tmi.Catalogs{
		Global:   s.catalogs.Global,
		Channels: channels,
	}
	s.logger.Info("Joined channel badge catalog",
		zap.String("channel", channel),
		zap.String("broadcasterId", broadcasterId),
		zap.Int("numBadgeSets", len(catalog)),
	)
	return nil
}

// Refresh refetches the global catalog along with the catalog of every joined channel,
// installing the results only if every request succeeds
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	channelIds := make(map[string]string, len(s.channelIds))
	for k, v := range s.channelIds {
		channelIds[k] = v
	}
	s.mu.RUnlock()

	var global tmi.BadgeCatalog
	var channelsMu sync.Mutex
	channels := make(map[string]tmi.BadgeCatalog, len(channelIds))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		catalog, err := FetchGlobal(gctx, s.client)
		if err != nil {
			return err
		}
		global = catalog
		return nil
	})
	for channel, broadcasterId := range channelIds {
		channel, broadcasterId := channel, broadcasterId
		g.Go(func() error {
			catalog, err := FetchChannel(gctx, s.client, broadcasterId)
			if err != nil {
				return fmt.Errorf("channel %s: %w", channel, err)
			}
			channelsMu.Lock()
			channels[channel] = catalog
			channelsMu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err != nil {
		return err
	}

	// Channels joined while we were fetching keep the catalog they were joined with
	for channel, catalog := range s.catalogs.Channels {
		if _, ok := channels[channel]; !ok {
			channels[channel] = catalog
		}
	}
	s.catalogs = tmi.Catalogs{
		Global:   global,
		Channels: channels,
	}
	s.refreshed = true
	return nil
}

// Run refreshes the catalogs immediately and then once per interval, until ctx is
// canceled. Failures are logged and retried at the next interval; the previously
// installed catalogs remain in use.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := s.Refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Error("Failed to refresh badge catalogs", zap.Error(err))
		} else {
			s.logger.Debug("Refreshed badge catalogs")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
