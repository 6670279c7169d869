package plan

// ConfigurationError means the plan cannot serve a date at all:
// empty cycle, missing macro target, missing cycle start. Surfaced to the
// caller as "plan unavailable", never silently defaulted.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return e.Reason
}

// ValidationError rejects a whole sync or rule-creation call.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
