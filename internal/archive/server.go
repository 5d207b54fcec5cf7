package archive

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/golden-vcr/tmi/gen/queries"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type Server struct {
	q Queries
}

func NewServer(q Queries) *Server {
	return &Server{
		q: q,
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.Path("/{channel}").Methods("GET").HandlerFunc(s.handleGetRecent)
}

func (s *Server) handleGetRecent(res http.ResponseWriter, req *http.Request) {
	channel := mux.Vars(req)["channel"]
	if channel == "" {
		http.Error(res, "channel must be specified", http.StatusBadRequest)
		return
	}

	// Clamp the requested limit to something reasonable
	limit := DefaultLimit
	if limitStr := req.URL.Query().Get("limit"); limitStr != "" {
		value, err := strconv.Atoi(limitStr)
		if err != nil || value < 1 {
			http.Error(res, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(value, MaxLimit)
	}

	rows, err := s.q.GetRecentMessages(req.Context(), queries.GetRecentMessagesParams{
		Channel:  channel,
		MaxCount: int32(limit),
	})
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	// Rows are newest-first; the client wants them in the order they were sent
	messages := make([]Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		messages = append(messages, Message{
			ID:          row.ID,
			UserID:      row.UserID,
			Username:    row.Username,
			DisplayName: row.DisplayName,
			Color:       row.Color,
			Text:        row.Text,
			Badges:      nonNil(row.Badges),
			EmoteIds:    nonNil(row.EmoteIds),
			Bits:        int(row.Bits),
			SentAt:      row.SentAt,
		})
	}

	history := History{Channel: channel, Messages: messages}
	if err := json.NewEncoder(res).Encode(history); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
