package form

import (
	"fmt"
	"strings"
)

// Answers maps step IDs to validated input values.
type Answers map[string]string

// ValidationError reports input rejected by a step validator.
// The notice is user-facing and is re-sent together with the step prompt.
type ValidationError struct {
	Notice string
}

func (e *ValidationError) Error() string { return e.Notice }

// Validator checks raw user input and returns the value to record.
type Validator func(input string) (string, error)

// Required rejects empty or whitespace-only input with the given notice.
func Required(notice string) Validator {
	return func(input string) (string, error) {
		if strings.TrimSpace(input) == "" {
			return "", &ValidationError{Notice: notice}
		}
		return input, nil
	}
}

// Optional accepts any input, including empty strings.
func Optional() Validator {
	return func(input string) (string, error) {
		return input, nil
	}
}

// OneOf accepts only values from the given set and rejects everything else
// with the notice. Matching is exact: the reply keyboards send button labels
// verbatim.
func OneOf(notice string, options ...string) Validator {
	allowed := make(map[string]struct{}, len(options))
	for _, o := range options {
		allowed[o] = struct{}{}
	}
	return func(input string) (string, error) {
		if _, ok := allowed[input]; !ok {
			return "", &ValidationError{Notice: notice}
		}
		return input, nil
	}
}

// Step describes a single question of a form.
type Step struct {
	// ID keys the recorded answer; unique within a definition.
	ID string
	// Label is the operator-facing field label used in the final record.
	Label string
	// Prompt is the outbound question text.
	Prompt string
	// PromptFunc, when set, renders the prompt from answers collected so far
	// and takes precedence over Prompt. Display only, never used for gating.
	PromptFunc func(Answers) string
	// Keyboard holds reply-keyboard rows offered with the prompt; nil means
	// the keyboard is removed for this step.
	Keyboard [][]string
	Validate Validator
}

// Definition is the immutable template of one business line's questionnaire.
type Definition struct {
	// ID identifies the form in logs and the lead archive.
	ID string
	// Welcome messages are sent on every start before the first prompt.
	Welcome []string
	// BackLabel is the reply-keyboard text the adapter maps to a Back event.
	BackLabel string
	// BackNotice precedes the re-issued prompt after back-navigation.
	BackNotice string
	// Done confirms a finished submission to the user.
	Done string
	// Header opens the operator summary, e.g. "📥 Новая заявка…".
	Header string
	Steps  []Step
}

// Check validates the definition shape once at wiring time.
func (d *Definition) Check() error {
	if d == nil {
		return fmt.Errorf("form: nil definition")
	}
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("form: definition id is required")
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("form %s: at least one step is required", d.ID)
	}
	seen := make(map[string]struct{}, len(d.Steps))
	for i, st := range d.Steps {
		if strings.TrimSpace(st.ID) == "" {
			return fmt.Errorf("form %s: step %d has empty id", d.ID, i)
		}
		if _, dup := seen[st.ID]; dup {
			return fmt.Errorf("form %s: duplicate step id %q", d.ID, st.ID)
		}
		seen[st.ID] = struct{}{}
		if st.Prompt == "" && st.PromptFunc == nil {
			return fmt.Errorf("form %s: step %q has no prompt", d.ID, st.ID)
		}
		if st.Validate == nil {
			return fmt.Errorf("form %s: step %q has no validator", d.ID, st.ID)
		}
		if strings.TrimSpace(st.Label) == "" {
			return fmt.Errorf("form %s: step %q has empty label", d.ID, st.ID)
		}
	}
	return nil
}

// Record projects the collected answers into an ordered record, one field
// per step in declaration order.
func (d *Definition) Record(ans Answers) Record {
	rec := make(Record, 0, len(d.Steps))
	for _, st := range d.Steps {
		rec = append(rec, Field{Label: st.Label, Value: ans[st.ID]})
	}
	return rec
}

func (d *Definition) prompt(i int, ans Answers) Prompt {
	st := d.Steps[i]
	text := st.Prompt
	if st.PromptFunc != nil {
		text = st.PromptFunc(ans)
	}
	return Prompt{Text: text, Keyboard: st.Keyboard}
}
