package archive

import (
	"context"

	"github.com/golden-vcr/tmi/gen/queries"
)

type Queries interface {
	RecordMessage(ctx context.Context, arg queries.RecordMessageParams) error
	MarkMessageDeleted(ctx context.Context, arg queries.MarkMessageDeletedParams) (int64, error)
	MarkUserMessagesDeleted(ctx context.Context, arg queries.MarkUserMessagesDeletedParams) (int64, error)
	MarkChannelMessagesDeleted(ctx context.Context, channel string) (int64, error)
	GetRecentMessages(ctx context.Context, arg queries.GetRecentMessagesParams) ([]queries.TmiMessage, error)
}

var _ Queries = (*queries.Queries)(nil)
