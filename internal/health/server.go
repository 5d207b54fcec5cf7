package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type GetStatusFunc func() error

// Check is a single dependency whose status is reported by the health endpoint
type Check struct {
	Name      string
	GetStatus GetStatusFunc

	// Required checks make the server unready when they fail; other checks only
	// degrade the server
	Required bool
}

// Status is the readiness report served by the health endpoint
type Status struct {
	IsReady    bool              `json:"isReady"`
	Message    string            `json:"message"`
	Components []ComponentStatus `json:"components"`
}

// ComponentStatus is the result of a single Check
type ComponentStatus struct {
	Name  string `json:"name"`
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type Server struct {
	checks []Check
}

func NewServer(checks ...Check) *Server {
	return &Server{
		checks: checks,
	}
}

func (s *Server) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	status := s.resolveStatus()
	res.Header().Set("content-type", "application/json")
	if !status.IsReady {
		res.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(res).Encode(status); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) resolveStatus() Status {
	status := Status{
		IsReady:    true,
		Components: make([]ComponentStatus, 0, len(s.checks)),
	}
	var failed, degraded []string
	for _, check := range s.checks {
		component := ComponentStatus{Name: check.Name, Ok: true}
		if err := check.GetStatus(); err != nil {
			component.Ok = false
			component.Error = err.Error()
			if check.Required {
				status.IsReady = false
				failed = append(failed, fmt.Sprintf("%s (%s)", check.Name, err))
			} else {
				degraded = append(degraded, fmt.Sprintf("%s (%s)", check.Name, err))
			}
		}
		status.Components = append(status.Components, component)
	}

	switch {
	case len(failed) > 0:
		status.Message = "Not ready: " + strings.Join(failed, ", ")
	case len(degraded) > 0:
		status.Message = "Ready, but degraded: " + strings.Join(degraded, ", ")
	default:
		status.Message = "Fully operational!"
	}
	return status
}
