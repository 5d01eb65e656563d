package translation

// StatusKind tags the outcome of a Resolve call.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusLoading
	StatusDictionary
	StatusMachine
	StatusDetectedGreek
	StatusError
)

// Status is a StatusKind plus the message carried by StatusError.
type Status struct {
	Kind    StatusKind
	Message string
}

// ErrorStatus returns a StatusError with msg.
func ErrorStatus(msg string) Status {
	return Status{Kind: StatusError, Message: msg}
}

func (s Status) String() string {
	switch s.Kind {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusDictionary:
		return "dictionary"
	case StatusMachine:
		return "machine"
	case StatusDetectedGreek:
		return "detected-greek"
	case StatusError:
		return "error: " + s.Message
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends a request. Only StatusLoading does not.
func (s Status) Terminal() bool {
	return s.Kind != StatusLoading
}
