package archive

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/golden-vcr/tmi"
	"github.com/golden-vcr/tmi/gen/queries"
)

// Recorder writes chat messages to the database as they're received, and marks them
// as deleted when moderators remove them
type Recorder struct {
	q      Queries
	logger *zap.Logger
}

func NewRecorder(q Queries, logger *zap.Logger) *Recorder {
	return &Recorder{
		q:      q,
		logger: logger,
	}
}

func (r *Recorder) HandleCommand(ctx context.Context, cmd tmi.Command) error {
	return r.Record(ctx, cmd)
}

// Record persists the effect of a single command. Commands other than PRIVMSG,
// CLEARMSG, and CLEARCHAT are ignored.
func (r *Recorder) Record(ctx context.Context, cmd tmi.Command) error {
	switch m := cmd.(type) {
	case *tmi.PrivateMessage:
		return r.recordMessage(ctx, m)
	case *tmi.ClearMessage:
		return r.recordClearMessage(ctx, m)
	case *tmi.ClearChat:
		return r.recordClearChat(ctx, m)
	}
	return nil
}

func (r *Recorder) recordMessage(ctx context.Context, m *tmi.PrivateMessage) error {
	id, err := uuid.Parse(m.Tags.ID)
	if err != nil {
		r.logger.Warn("Ignoring chat message with invalid id",
			zap.String("channel", m.Channel),
			zap.String("messageId", m.Tags.ID),
		)
		return nil
	}

	username := ""
	if m.Source != nil {
		username = m.Source.UserName
	}
	var bits int32
	if m.Tags.Bits != nil {
		bits = clampBits(*m.Tags.Bits)
		if int(bits) != *m.Tags.Bits {
			r.logger.Warn("Clamped out-of-range bits value",
				zap.String("channel", m.Channel),
				zap.String("messageId", m.Tags.ID),
				zap.Int("bits", *m.Tags.Bits),
			)
		}
	}
	sentAt := m.Tags.TmiSentTs
	if sentAt.IsZero() {
		sentAt = time.Now().UTC()
	}

	badges := make([]string, 0, len(m.Tags.Badges))
	for _, badge := range m.Tags.Badges {
		badges = append(badges, fmt.Sprintf("%s/%s", badge.Name, badge.ID))
	}
	emoteIds := make([]string, 0, len(m.Tags.Emotes))
	for _, emote := range m.Tags.Emotes {
		emoteIds = append(emoteIds, emote.ID)
	}

	if err := r.q.RecordMessage(ctx, queries.RecordMessageParams{
		ID:          id,
		Channel:     m.Channel,
		UserID:      m.Tags.UserID,
		Username:    username,
		DisplayName: m.Tags.DisplayName,
		Color:       m.Tags.Color,
		Text:        m.Text,
		Badges:      badges,
		EmoteIds:    emoteIds,
		Bits:        bits,
		SentAt:      sentAt,
	}); err != nil {
		return fmt.Errorf("error recording message %s: %w", id, err)
	}
	return nil
}

func (r *Recorder) recordClearMessage(ctx context.Context, m *tmi.ClearMessage) error {
	id, err := uuid.Parse(m.Tags.TargetMsgID)
	if err != nil {
		r.logger.Warn("Ignoring CLEARMSG with invalid target message id",
			zap.String("channel", m.Channel),
			zap.String("targetMsgId", m.Tags.TargetMsgID),
		)
		return nil
	}

	if _, err := r.q.MarkMessageDeleted(ctx, queries.MarkMessageDeletedParams{
		Channel: m.Channel,
		ID:      id,
	}); err != nil {
		return fmt.Errorf("error marking message %s as deleted: %w", id, err)
	}
	return nil
}

func (r *Recorder) recordClearChat(ctx context.Context, m *tmi.ClearChat) error {
	if m.User == "" {
		numDeleted, err := r.q.MarkChannelMessagesDeleted(ctx, m.Channel)
		if err != nil {
			return fmt.Errorf("error clearing messages in channel %s: %w", m.Channel, err)
		}
		r.logger.Info("Cleared archived chat",
			zap.String("channel", m.Channel),
			zap.Int64("numDeleted", numDeleted),
		)
		return nil
	}

	if m.Tags.TargetUserID == "" {
		r.logger.Warn("Ignoring CLEARCHAT with no target user id",
			zap.String("channel", m.Channel),
			zap.String("user", m.User),
		)
		return nil
	}

	numDeleted, err := r.q.MarkUserMessagesDeleted(ctx, queries.MarkUserMessagesDeletedParams{
		Channel: m.Channel,
		UserID:  m.Tags.TargetUserID,
	})
	if err != nil {
		return fmt.Errorf("error clearing messages from user %s: %w", m.Tags.TargetUserID, err)
	}
	r.logger.Info("Cleared archived messages from user",
		zap.String("channel", m.Channel),
		zap.String("user", m.User),
		zap.Int64("numDeleted", numDeleted),
	)
	return nil
}

// clampBits fits a bits count into the range of the bits column
func clampBits(bits int) int32 {
	if bits < 0 {
		return 0
	}
	if bits > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(bits)
}
