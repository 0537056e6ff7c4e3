package form

// EventKind classifies inbound conversation events.
type EventKind int

const (
	// EventStart begins or restarts a conversation from the first step.
	EventStart EventKind = iota
	// EventBack navigates to the previous step.
	EventBack
	// EventText carries user input for the current step.
	EventText
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventBack:
		return "back"
	case EventText:
		return "text"
	}
	return "unknown"
}

// Event is one inbound occurrence for a session, as mapped by the transport
// adapter from a raw platform message.
type Event struct {
	Kind EventKind
	Text string
}

// Prompt is one outbound message. A nil Keyboard removes any reply keyboard
// shown for a previous step.
type Prompt struct {
	Text     string
	Keyboard [][]string
}

// Field is one labeled answer of a finished submission.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Record is the finished submission in step order. It is never mutated after
// the engine returns it.
type Record []Field

// Action is the engine's response to one event: messages to send to the user
// and, on completion, the finished record.
type Action struct {
	Prompts []Prompt
	// Invalid marks a rejected input; the session did not advance.
	Invalid bool
	// Record is non-nil exactly once per completed session.
	Record Record
}
