package apitypes

import "fmt"

// Stream selects one of the two log files served by the log service. The
// value doubles as the `type` query parameter on the stats, search and
// archive endpoints.
type Stream string

const (
	StreamRequests Stream = "requests"
	StreamErrors   Stream = "errors"
)

// Valid reports whether s names a known stream.
func (s Stream) Valid() bool {
	return s == StreamRequests || s == StreamErrors
}

// LogFile returns the file name addressed by the tail endpoint.
func (s Stream) LogFile() string {
	return string(s) + ".log"
}

// Label returns the singular display name used in confirmation prompts.
func (s Stream) Label() string {
	if s == StreamErrors {
		return "Error"
	}
	return "Request"
}

func ParseStream(v string) (Stream, error) {
	s := Stream(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown stream %q (expected %q or %q)", v, StreamRequests, StreamErrors)
	}
	return s, nil
}

type StatsResponse struct {
	Size    int64 `json:"size"`
	MaxSize int64 `json:"max_size"`
}

type SearchResponse struct {
	Count   int      `json:"count"`
	Results []string `json:"results"`
}

// ErrorResponse is the JSON body the service returns on internal errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}
