package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	skillHandler   skillHandler
	contactHandler contactHandler
}

// ErrorResponse is the wire shape of every error body: a human-readable
// message, plus the offending field name for validation failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
