package models

// Result is the envelope returned by mutating endpoints. It reports the
// outcome in the payload, independently of the HTTP status code.
type Result struct {
	// Success is true when the operation took effect.
	Success bool `json:"success"`

	// Msg optionally explains the outcome. It is rendered as null when unset.
	Msg *string `json:"msg"`
}

// OK returns a successful [Result] without a message.
func OK() Result {
	return Result{Success: true}
}

// Failed returns an unsuccessful [Result] carrying msg.
func Failed(msg string) Result {
	return Result{Success: false, Msg: &msg}
}

// ErrorResponse is the body written for request-scoped failures.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NumberResponse acknowledges a number accepted by the numeric endpoint.
type NumberResponse struct {
	Msg string `json:"msg"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
