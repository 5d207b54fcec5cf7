package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const keepaliveInterval = 30 * time.Second

// Handler is an HTTP handler that serves a stream of data using Server-Sent Events
type Handler[T any] struct {
	ctx    context.Context
	logger *zap.Logger
	b      bus[T]

	// OnConnectEventFunc, if set, supplies a message that's sent to each client as soon
	// as it connects
	OnConnectEventFunc func() T

	// MatchFunc, if set, decides whether a message should be sent to the client that
	// made the given request, e.g. to let clients subscribe to a single channel
	MatchFunc func(req *http.Request, message T) bool

	// EventNameFunc, if set, names the event for each message, so that clients can
	// listen for specific event types rather than handling every message
	EventNameFunc func(message T) string
}

// NewHandler initializes an SSE handler that will read messages from the given channel
// and fan them out to all extant HTTP connections
func NewHandler[T any](ctx context.Context, logger *zap.Logger, ch <-chan T) *Handler[T] {
	h := &Handler[T]{
		ctx:    ctx,
		logger: logger,
		b:      newBus[T](),
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				h.b.clear()
				return
			case message := <-ch:
				if numDropped := h.b.publish(message); numDropped > 0 {
					h.logger.Warn("Dropped SSE message for slow clients", zap.Int("numClients", numDropped))
				}
			}
		}
	}()
	return h
}

// ServeHTTP responds by opening a long-lived HTTP connection to which events will be
// written as the handler receives them, formatted as text/event-stream messages with
// 'data' consisting of a JSON-encoded message payload
func (h *Handler[T]) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	// If a content-type is explicitly requested, require that it's text/event-stream
	accept := req.Header.Get("accept")
	if accept != "" && accept != "*/*" && !strings.HasPrefix(accept, "text/event-stream") {
		message := fmt.Sprintf("content-type %s is not supported", accept)
		http.Error(res, message, http.StatusBadRequest)
		return
	}
	flusher, ok := res.(http.Flusher)
	if !ok {
		http.Error(res, "streaming is not supported", http.StatusInternalServerError)
		return
	}

	// Keep the connection alive and open a text/event-stream response body
	res.Header().Set("content-type", "text/event-stream")
	res.Header().Set("cache-control", "no-cache")
	res.Header().Set("connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Send an initial value if configured to do so: otherwise send an initial keepalive
	// message so that proxies start streaming immediately
	if h.OnConnectEventFunc != nil {
		h.write(res, h.OnConnectEventFunc())
	} else {
		res.Write([]byte(":\n\n"))
	}
	flusher.Flush()

	ch := make(chan T, 32)
	h.b.register(ch)
	defer h.b.unregister(ch)

	logger := h.logger.With(zap.String("remoteAddr", req.RemoteAddr))
	logger.Info("Opened SSE connection")
	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()
	for {
		select {
		case <-keepalive.C:
			res.Write([]byte(":\n\n"))
			flusher.Flush()
		case message := <-ch:
			if h.MatchFunc != nil && !h.MatchFunc(req, message) {
				continue
			}
			h.write(res, message)
			flusher.Flush()
		case <-h.ctx.Done():
			logger.Info("Server is shutting down; abandoning SSE connection")
			return
		case <-req.Context().Done():
			logger.Info("SSE connection closed")
			return
		}
	}
}

func (h *Handler[T]) write(res http.ResponseWriter, message T) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("Failed to serialize SSE message as JSON", zap.Error(err))
		return
	}
	if h.EventNameFunc != nil {
		if name := h.EventNameFunc(message); name != "" {
			fmt.Fprintf(res, "event: %s\n", name)
		}
	}
	fmt.Fprintf(res, "data: %s\n\n", data)
}
