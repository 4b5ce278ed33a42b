package input

import "net/http"

// Request is the fully resolved request produced by a Builder. It shares no
// memory with the Builder that produced it.
type Request struct {
	URL    string
	Header http.Header
	Body   Body
	Form   bool
}
