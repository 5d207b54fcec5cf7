package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/golden-vcr/tmi"
)

// Handler is anything that consumes the commands received from chat
type Handler interface {
	HandleCommand(ctx context.Context, cmd tmi.Command) error
}

// Dispatch passes each command received on the channel to every handler in turn, until
// the context is canceled. Handler errors are logged but do not stop the dispatcher.
func Dispatch(ctx context.Context, logger *zap.Logger, commands <-chan tmi.Command, handlers ...Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			for _, h := range handlers {
				if err := h.HandleCommand(ctx, cmd); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					logger.Error("Failed to handle chat command",
						zap.String("verb", string(cmd.Verb())),
						zap.Error(err),
					)
				}
			}
		}
	}
}
