package login

// Field identifies an input whose validation message the backend may report.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	// FieldMessage is the backend's identifier for form-level errors.
	FieldMessage Field = "message"
)

// FormState is what the user has typed, plus whether a submission is in flight.
type FormState struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Pending  bool   `json:"pending"`
}

// FeedbackState holds the messages shown around the form. Message is positive
// feedback; the others are errors.
type FeedbackState struct {
	Message       string `json:"message,omitempty"`
	EmailError    string `json:"emailError,omitempty"`
	PasswordError string `json:"passwordError,omitempty"`
	FormError     string `json:"formError,omitempty"`
}

// Empty reports whether no feedback is shown.
func (f FeedbackState) Empty() bool {
	return f == FeedbackState{}
}

// State is the complete view state of the login page.
type State struct {
	Form     FormState     `json:"form"`
	Feedback FeedbackState `json:"feedback"`
}

// EventType keys the transitions applied by Reduce.
type EventType string

const (
	EventInputChanged    EventType = "input-changed"
	EventSubmitStarted   EventType = "submit-started"
	EventSubmitSucceeded EventType = "submit-succeeded"
	EventSubmitFailed    EventType = "submit-failed"
	EventSubmitFinished  EventType = "submit-finished"
)

// Event is a single state transition.
type Event struct {
	Type EventType
	// Field and Value are set for EventInputChanged.
	Field Field
	Value string
	// Message is set for EventSubmitSucceeded.
	Message string
	// Errors is set for EventSubmitFailed. A nil slice means the failure
	// carried no validation errors and produces no visible feedback.
	Errors []ErrorResponse
}

// InputChanged builds the event for an edit of field.
func InputChanged(field Field, value string) Event {
	return Event{Type: EventInputChanged, Field: field, Value: value}
}

// Reduce applies e to s and returns the new state. It never mutates s.
func Reduce(s State, e Event) State {
	switch e.Type {
	case EventInputChanged:
		switch e.Field {
		case FieldEmail:
			s.Form.Email = e.Value
			s.Feedback.EmailError = ""
		case FieldPassword:
			s.Form.Password = e.Value
			s.Feedback.PasswordError = ""
		}
	case EventSubmitStarted:
		s.Form.Pending = true
		s.Feedback = FeedbackState{}
	case EventSubmitSucceeded:
		s.Feedback.Message = e.Message
	case EventSubmitFailed:
		for _, fe := range e.Errors {
			s.Feedback = routeError(s.Feedback, fe)
		}
	case EventSubmitFinished:
		s.Form.Pending = false
	}
	return s
}

// routeError places fe in its slot. Unrecognized fields leave f unchanged.
func routeError(f FeedbackState, fe ErrorResponse) FeedbackState {
	switch Field(fe.Field) {
	case FieldEmail:
		f.EmailError = fe.Message
	case FieldPassword:
		f.PasswordError = fe.Message
	case FieldMessage:
		f.FormError = fe.Message
	}
	return f
}

// Known reports whether the backend field identifier maps to a feedback slot.
func Known(field string) bool {
	switch Field(field) {
	case FieldEmail, FieldPassword, FieldMessage:
		return true
	}
	return false
}
