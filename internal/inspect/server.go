package inspect

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/golden-vcr/tmi"
)

// maxBodySize caps the number of bytes read from a single request
const maxBodySize = 1 << 20

// CatalogSource supplies the badge catalogs used to resolve badge images
type CatalogSource interface {
	Catalogs() tmi.Catalogs
}

// Result describes a single parsed line
type Result struct {
	Command tmi.Verb    `json:"command"`
	Message tmi.Command `json:"message"`
}

// Server accepts raw TMI lines and responds with the commands they parse to, using
// the same badge catalogs as the live chat agent
type Server struct {
	catalogs CatalogSource
}

func NewServer(catalogs CatalogSource) *Server {
	return &Server{
		catalogs: catalogs,
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	for _, root := range []string{"", "/"} {
		r.Path(root).Methods("POST").HandlerFunc(s.handlePost)
		r.Path(root).HandlerFunc(s.handleMethodNotAllowed)
	}
}

func (s *Server) handlePost(res http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodySize))
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	commands := tmi.ParseBatch(string(body), s.catalogs.Catalogs())
	results := make([]Result, 0, len(commands))
	for _, cmd := range commands {
		results = append(results, Result{
			Command: cmd.Verb(),
			Message: cmd,
		})
	}

	res.Header().Set("content-type", "application/json")
	if err := json.NewEncoder(res).Encode(results); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleMethodNotAllowed(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("allow", http.MethodPost)
	http.Error(res, "method not allowed", http.StatusMethodNotAllowed)
}
