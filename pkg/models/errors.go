package models

// ValidationError reports a malformed weight configuration or record field.
// It carries the offending value so it can be surfaced to the caller
// unchanged; invalid configuration is never auto-corrected.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}
