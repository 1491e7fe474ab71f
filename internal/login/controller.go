package login

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/nfrund/storefront/internal/apiclient"
	"github.com/nfrund/storefront/internal/pubsub"
)

// Endpoint is the backend path that authenticates a user.
const Endpoint = "/api/v1/users/login"

// ErrSubmitInFlight is returned by Submit when another submission on the same
// controller has not finished yet.
var ErrSubmitInFlight = errors.New("login: submission already in flight")

// Poster sends a JSON body to the backend. *apiclient.Client satisfies it.
type Poster interface {
	PostJSON(ctx context.Context, path string, body any) (*apiclient.Response, error)
}

// Controller owns the login page state and runs submissions against the backend.
// It is safe for concurrent use.
type Controller struct {
	client    Poster
	publisher pubsub.Publisher
	logger    *slog.Logger

	mu    sync.Mutex
	state State
}

// Option configures a Controller.
type Option func(*Controller)

// WithState seeds the controller, e.g. with state restored from a session.
// A restored state is never pending.
func WithState(s State) Option {
	return func(c *Controller) {
		s.Form.Pending = false
		c.state = s
	}
}

// WithPublisher publishes submission lifecycle events to p.
func WithPublisher(p pubsub.Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller that talks to the backend through client.
func NewController(client Poster, opts ...Option) *Controller {
	c := &Controller{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) dispatch(e Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, e)
	return c.state
}

// SetEmail records an edit of the email field and clears its error.
func (c *Controller) SetEmail(value string) State {
	return c.dispatch(InputChanged(FieldEmail, value))
}

// SetPassword records an edit of the password field and clears its error.
func (c *Controller) SetPassword(value string) State {
	return c.dispatch(InputChanged(FieldPassword, value))
}

// begin marks the controller pending and returns the credentials to send.
func (c *Controller) begin() (Credentials, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Form.Pending {
		return Credentials{}, ErrSubmitInFlight
	}
	c.state = Reduce(c.state, Event{Type: EventSubmitStarted})
	return Credentials{Email: c.state.Form.Email, Password: c.state.Form.Password}, nil
}

// Submit posts the current credentials and folds the outcome into the state.
// Backend and transport failures never surface as errors: validation errors
// land in the feedback slots and everything else is only logged. The only
// error returned is ErrSubmitInFlight.
func (c *Controller) Submit(ctx context.Context) (result State, err error) {
	creds, err := c.begin()
	if err != nil {
		return c.State(), err
	}
	defer func() { result = c.dispatch(Event{Type: EventSubmitFinished}) }()

	c.publish(ctx, submitStarted, SubmitEvent{Email: creds.Email})

	event := c.send(ctx, creds)
	c.dispatch(event)

	if event.Type == EventSubmitSucceeded {
		c.publish(ctx, submitSucceeded, SubmitEvent{Email: creds.Email, Message: event.Message})
	} else {
		c.publish(ctx, submitFailed, SubmitEvent{Email: creds.Email, Errors: event.Errors})
	}
	return result, nil
}

// send performs the request and translates the outcome into an event.
func (c *Controller) send(ctx context.Context, creds Credentials) (event Event) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("login submission panicked", "panic", r)
			event = Event{Type: EventSubmitFailed}
		}
	}()

	resp, err := c.client.PostJSON(ctx, Endpoint, creds)
	if err == nil {
		msg, derr := decodeSuccess(resp.Body)
		if derr != nil {
			c.logger.Error("login succeeded with unexpected payload", "status", resp.StatusCode, "error", derr)
			return Event{Type: EventSubmitFailed}
		}
		return Event{Type: EventSubmitSucceeded, Message: msg}
	}

	var statusErr *apiclient.StatusError
	if !errors.As(err, &statusErr) {
		c.logger.Error("login request failed", "error", err)
		return Event{Type: EventSubmitFailed}
	}

	fieldErrors, derr := decodeErrors(statusErr.Response.Body)
	if derr != nil {
		c.logger.Error("login failed with unexpected payload", "status", statusErr.Response.StatusCode, "error", derr)
		return Event{Type: EventSubmitFailed}
	}
	for _, fe := range fieldErrors {
		if !Known(fe.Field) {
			c.logger.Debug("dropping error for unknown field", "field", fe.Field, "message", fe.Message)
		}
	}
	return Event{Type: EventSubmitFailed, Errors: fieldErrors}
}
