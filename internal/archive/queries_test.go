package archive

import (
	"context"
	"sort"

	"github.com/golden-vcr/tmi/gen/queries"
)

type mockQueries struct {
	err      error
	messages []queries.TmiMessage
	deleted  map[string]bool
}

var _ Queries = (*mockQueries)(nil)

func (m *mockQueries) RecordMessage(ctx context.Context, arg queries.RecordMessageParams) error {
	if m.err != nil {
		return m.err
	}
	for _, message := range m.messages {
		if message.ID == arg.ID {
			return nil
		}
	}
	m.messages = append(m.messages, queries.TmiMessage{
		ID:          arg.ID,
		Channel:     arg.Channel,
		UserID:      arg.UserID,
		Username:    arg.Username,
		DisplayName: arg.DisplayName,
		Color:       arg.Color,
		Text:        arg.Text,
		Badges:      arg.Badges,
		EmoteIds:    arg.EmoteIds,
		Bits:        arg.Bits,
		SentAt:      arg.SentAt,
	})
	return nil
}

func (m *mockQueries) MarkMessageDeleted(ctx context.Context, arg queries.MarkMessageDeletedParams) (int64, error) {
	return m.markDeleted(func(message *queries.TmiMessage) bool {
		return message.Channel == arg.Channel && message.ID == arg.ID
	})
}

func (m *mockQueries) MarkUserMessagesDeleted(ctx context.Context, arg queries.MarkUserMessagesDeletedParams) (int64, error) {
	return m.markDeleted(func(message *queries.TmiMessage) bool {
		return message.Channel == arg.Channel && message.UserID == arg.UserID
	})
}

func (m *mockQueries) MarkChannelMessagesDeleted(ctx context.Context, channel string) (int64, error) {
	return m.markDeleted(func(message *queries.TmiMessage) bool {
		return message.Channel == channel
	})
}

func (m *mockQueries) GetRecentMessages(ctx context.Context, arg queries.GetRecentMessagesParams) ([]queries.TmiMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	rows := make([]queries.TmiMessage, 0)
	for _, message := range m.messages {
		if message.Channel == arg.Channel && !m.deleted[message.ID.String()] {
			rows = append(rows, message)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SentAt.After(rows[j].SentAt)
	})
	if len(rows) > int(arg.MaxCount) {
		rows = rows[:arg.MaxCount]
	}
	return rows, nil
}

func (m *mockQueries) markDeleted(match func(message *queries.TmiMessage) bool) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.deleted == nil {
		m.deleted = make(map[string]bool)
	}
	var n int64
	for i := range m.messages {
		key := m.messages[i].ID.String()
		if !m.deleted[key] && match(&m.messages[i]) {
			m.deleted[key] = true
			n++
		}
	}
	return n, nil
}
