package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/golden-vcr/tmi"
)

// Log converts the chat commands received from Twitch into the events needed to render
// each channel's chat log. Log is a Handler, and it expects to be fed commands from a
// single goroutine.
type Log struct {
	logger              *zap.Logger
	events              chan *LogEvent
	numMessagesToBuffer int
	buffers             map[string]*messageBuffer
}

func NewLog(logger *zap.Logger, numMessagesToBuffer int) *Log {
	return &Log{
		logger:              logger,
		events:              make(chan *LogEvent, 32),
		numMessagesToBuffer: numMessagesToBuffer,
		buffers:             make(map[string]*messageBuffer),
	}
}

// Events returns the channel to which all log events are written
func (l *Log) Events() <-chan *LogEvent {
	return l.events
}

func (l *Log) HandleCommand(ctx context.Context, cmd tmi.Command) error {
	switch m := cmd.(type) {
	case *tmi.PrivateMessage:
		return l.handleMessage(ctx, m)
	case *tmi.ClearMessage:
		return l.handleClearMessage(ctx, m)
	case *tmi.ClearChat:
		return l.handleClearChat(ctx, m)
	}
	return nil
}

// handleMessage is called in response to a PRIVMSG
func (l *Log) handleMessage(ctx context.Context, m *tmi.PrivateMessage) error {
	l.logger.Debug("Chat message",
		zap.String("channel", m.Channel),
		zap.String("messageId", m.Tags.ID),
		zap.String("userId", m.Tags.UserID),
		zap.String("displayName", m.Tags.DisplayName),
		zap.String("text", m.Text),
	)
	l.buffer(m.Channel).add(m.Tags.UserID, m.Tags.ID)
	return l.emit(ctx, newMessageEvent(m))
}

// handleClearMessage is called in response to a CLEARMSG, which targets a single
// message ID for deletion
func (l *Log) handleClearMessage(ctx context.Context, m *tmi.ClearMessage) error {
	l.logger.Info("Chat message deleted",
		zap.String("channel", m.Channel),
		zap.String("messageId", m.Tags.TargetMsgID),
		zap.String("login", m.Tags.Login),
	)
	l.buffer(m.Channel).remove(m.Tags.TargetMsgID)
	return l.emit(ctx, &LogEvent{
		Type:    LogEventTypeDeletion,
		Channel: m.Channel,
		Deletion: &LogDeletion{
			MessageIDs: []string{m.Tags.TargetMsgID},
		},
	})
}

// handleClearChat is called in response to a CLEARCHAT, which either clears the entire
// chat log (if no user is specified) or targets all messages sent by the target user
// for deletion
func (l *Log) handleClearChat(ctx context.Context, m *tmi.ClearChat) error {
	buffer := l.buffer(m.Channel)
	if m.User == "" {
		l.logger.Info("Chat cleared", zap.String("channel", m.Channel))
		buffer.reset()
		return l.emit(ctx, &LogEvent{Type: LogEventTypeClear, Channel: m.Channel})
	}

	l.logger.Info("Chat messages cleared for user",
		zap.String("channel", m.Channel),
		zap.String("user", m.User),
		zap.String("userId", m.Tags.TargetUserID),
	)
	if m.Tags.TargetUserID == "" {
		return nil
	}
	messageIds := buffer.resolveMessageIds(m.Tags.TargetUserID)
	if len(messageIds) == 0 {
		return nil
	}
	buffer.remove(messageIds...)
	return l.emit(ctx, &LogEvent{
		Type:    LogEventTypeDeletion,
		Channel: m.Channel,
		Deletion: &LogDeletion{
			MessageIDs: messageIds,
		},
	})
}

func (l *Log) buffer(channel string) *messageBuffer {
	b, ok := l.buffers[channel]
	if !ok {
		b = newMessageBuffer(l.numMessagesToBuffer)
		l.buffers[channel] = b
	}
	return b
}

func (l *Log) emit(ctx context.Context, event *LogEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case l.events <- event:
		return nil
	}
}
