package server

// Response is the standardized JSON body for a successful benchmark request.
type Response struct {
	// Name is the registry name of the update strategy that was run.
	Name string `json:"name"`
	// Algorithm is the strategy's descriptive name.
	Algorithm string `json:"algorithm"`
	// N is the grid dimension that was benchmarked.
	N int `json:"n"`
	// Beta is the discount factor used for the update.
	Beta float64 `json:"beta"`
	// Seconds is the measured wall-clock time of the update pass.
	Seconds float64 `json:"seconds"`
	// Elapsed is the formatted duration string.
	Elapsed string `json:"elapsed"`
}

// ErrorResponse is the standardized JSON body for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// BenchParseError represents a parameter parsing error with HTTP status.
type BenchParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e BenchParseError) Error() string {
	return e.Message
}
