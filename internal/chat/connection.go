package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var ErrConnectionNotOpen = errors.New("not connected")

type IrcConnection interface {
	OnConnect(func())
	Connect() error
	Disconnect() error
}

// Connection tracks the lifecycle of an IRC client's connection to Twitch, so that
// readiness can be reported via GetStatus
type Connection struct {
	client IrcConnection
	logger *zap.Logger

	connectErrChan chan error

	mu      sync.RWMutex
	open    bool
	lastErr error
}

func NewConnection(client IrcConnection, logger *zap.Logger) *Connection {
	return &Connection{
		client:         client,
		logger:         logger,
		connectErrChan: make(chan error, 1),
	}
}

func (c *Connection) GetStatus() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastErr == nil && !c.open {
		return ErrConnectionNotOpen
	}
	return c.lastErr
}

func (c *Connection) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context canceled while waiting to connect: %v", err)
	}

	// Signal when the connection succeeds, limited to the scope of this function
	connected := make(chan struct{}, 1)
	c.client.OnConnect(func() {
		select {
		case connected <- struct{}{}:
		default:
		}
	})
	defer c.client.OnConnect(nil)

	// Connect() blocks for the lifetime of the connection, so run it in a separate
	// goroutine and signal its return value via the error channel
	go func() {
		c.connectErrChan <- c.client.Connect()
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting to connect: %v", ctx.Err())
	case err := <-c.connectErrChan:
		// Connect returned before OnConnect fired
		if err == nil {
			err = ErrConnectionNotOpen
		}
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return err
	case <-connected:
	}

	c.mu.Lock()
	c.open = true
	c.lastErr = nil
	c.mu.Unlock()
	c.logger.Info("Connected to Twitch chat")

	// When Connect eventually returns, record the result: a non-nil error means we've
	// been disconnected unexpectedly
	go func() {
		err := <-c.connectErrChan
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil && c.open {
			c.logger.Error("Disconnected from Twitch chat", zap.Error(err))
			c.open = false
			c.lastErr = err
		}
	}()
	return nil
}

func (c *Connection) Close() error {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return ErrConnectionNotOpen
	}
	c.open = false
	c.mu.Unlock()
	return c.client.Disconnect()
}
