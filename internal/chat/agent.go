package chat

import (
	"context"
	"time"

	irc "github.com/gempir/go-twitch-irc/v4"
	"go.uber.org/zap"

	"github.com/golden-vcr/tmi"
)

const commandBufferSize = 256

// CatalogSource supplies the badge catalogs that incoming lines are resolved against
type CatalogSource interface {
	Catalogs() tmi.Catalogs
}

// Agent connects anonymously to Twitch chat, joins a set of channels, and re-parses
// every line it receives into a tmi.Command, which it publishes via Commands
type Agent struct {
	client     *irc.Client
	connection *Connection
	catalogs   CatalogSource
	logger     *zap.Logger
	commands   chan tmi.Command
}

func NewAgent(ctx context.Context, logger *zap.Logger, catalogs CatalogSource, channelNames []string, connectTimeout time.Duration) (*Agent, error) {
	a := &Agent{
		client:   irc.NewAnonymousClient(),
		catalogs: catalogs,
		logger:   logger,
		commands: make(chan tmi.Command, commandBufferSize),
	}
	a.client.OnPrivateMessage(func(m irc.PrivateMessage) { a.handleLine(m.Raw) })
	a.client.OnClearMessage(func(m irc.ClearMessage) { a.handleLine(m.Raw) })
	a.client.OnClearChatMessage(func(m irc.ClearChatMessage) { a.handleLine(m.Raw) })
	a.client.OnNoticeMessage(func(m irc.NoticeMessage) { a.handleLine(m.Raw) })
	a.client.OnUserNoticeMessage(func(m irc.UserNoticeMessage) { a.handleLine(m.Raw) })
	a.client.OnRoomStateMessage(func(m irc.RoomStateMessage) { a.handleLine(m.Raw) })
	a.client.OnUserStateMessage(func(m irc.UserStateMessage) { a.handleLine(m.Raw) })
	a.client.OnGlobalUserStateMessage(func(m irc.GlobalUserStateMessage) { a.handleLine(m.Raw) })
	a.client.OnWhisperMessage(func(m irc.WhisperMessage) { a.handleLine(m.Raw) })
	a.client.OnReconnectMessage(func(m irc.ReconnectMessage) { a.handleLine(m.Raw) })
	a.client.OnUserJoinMessage(func(m irc.UserJoinMessage) { a.handleLine(m.Raw) })
	a.client.OnUserPartMessage(func(m irc.UserPartMessage) { a.handleLine(m.Raw) })
	a.client.OnUnsetMessage(func(m irc.RawMessage) { a.handleLine(m.Raw) })
	a.client.Join(channelNames...)

	a.connection = NewConnection(a.client, logger)
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := a.connection.Open(ctx); err != nil {
		return nil, err
	}
	logger.Info("Joined Twitch chat", zap.Strings("channels", channelNames))
	return a, nil
}

// handleLine is called from the IRC client's read loop for every line received. The
// client's own decoding is discarded in favor of tmi.Parse, which resolves badges
// against our catalogs. If the consumer has fallen behind, the command is dropped
// rather than stalling the connection.
func (a *Agent) handleLine(raw string) {
	cmd := tmi.Parse(raw, a.catalogs.Catalogs())
	select {
	case a.commands <- cmd:
	default:
		a.logger.Warn("Dropped chat command; consumer is not keeping up",
			zap.String("verb", string(cmd.Verb())),
		)
	}
}

// Commands returns the channel to which parsed commands are published
func (a *Agent) Commands() <-chan tmi.Command {
	return a.commands
}

func (a *Agent) GetStatus() error {
	return a.connection.GetStatus()
}

func (a *Agent) Disconnect() error {
	return a.connection.Close()
}
