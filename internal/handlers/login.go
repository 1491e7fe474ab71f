package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/storefront/internal/apiclient"
	"github.com/nfrund/storefront/internal/login"
	"github.com/nfrund/storefront/internal/middleware"
	"github.com/nfrund/storefront/internal/pubsub"
	"github.com/nfrund/storefront/internal/view"
)

// LoginHandler serves the login page and runs submissions through a
// login.Controller rebuilt from the visitor's session on every request.
type LoginHandler struct {
	client    login.Poster
	publisher pubsub.Publisher
}

// NewLoginHandler creates a new LoginHandler. publisher may be nil.
func NewLoginHandler(client login.Poster, publisher pubsub.Publisher) *LoginHandler {
	return &LoginHandler{
		client:    client,
		publisher: publisher,
	}
}

func (h *LoginHandler) controller(c echo.Context, poster login.Poster, stored login.State) *login.Controller {
	opts := []login.Option{
		login.WithState(stored),
		login.WithLogger(middleware.FromContext(c.Request().Context())),
	}
	if h.publisher != nil {
		opts = append(opts, login.WithPublisher(h.publisher))
	}
	return login.NewController(poster, opts...)
}

// LoginGet renders the login page (GET /login).
func (h *LoginHandler) LoginGet(c echo.Context) error {
	return renderLoginPage(c, view.LoadLoginState(c))
}

// LoginPost handles the form submission (POST /login). htmx requests get the
// form fragment back; plain form posts get the whole page.
func (h *LoginHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ctrl := h.controller(c, &cookieRelay{next: h.client, c: c}, view.LoadLoginState(c))
	ctrl.SetEmail(req.Email)
	ctrl.SetPassword(req.Password)

	state, err := ctrl.Submit(c.Request().Context())
	if errors.Is(err, login.ErrSubmitInFlight) {
		return echo.NewHTTPError(http.StatusConflict, "login already in progress")
	}

	if err := view.SaveLoginState(c, state); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to save login state", "error", err)
	}

	if isHTMX(c) {
		return c.Render(http.StatusOK, "", view.LoginForm(view.NewLoginData(state)))
	}
	return renderLoginPage(c, state)
}

// LoginField handles an edit of a single input (POST /login/fields/:field).
// It clears that field's error and returns the emptied error slot. The session
// is written only when an error was cleared, so an edit racing a submission
// cannot replace the feedback the submission stored.
func (h *LoginHandler) LoginField(c echo.Context) error {
	req, err := bindFieldEdit(c)
	if err != nil {
		return err
	}

	stored := view.LoadLoginState(c)
	ctrl := h.controller(c, h.client, stored)
	var state login.State
	switch login.Field(req.Field) {
	case login.FieldEmail:
		state = ctrl.SetEmail(req.Value)
	case login.FieldPassword:
		state = ctrl.SetPassword(req.Value)
	}

	if state.Feedback != stored.Feedback {
		if err := view.SaveLoginState(c, state); err != nil {
			middleware.FromContext(c.Request().Context()).Error("Failed to save login state", "error", err)
		}
	}

	field := login.Field(req.Field)
	message := state.Feedback.EmailError
	if field == login.FieldPassword {
		message = state.Feedback.PasswordError
	}
	return c.Render(http.StatusOK, "", view.FieldError(field, message))
}

func renderLoginPage(c echo.Context, state login.State) error {
	lang := view.PreferredLanguage(c.Request().Header.Get("Accept-Language"))
	header := view.HeaderData{Language: view.LanguageName(lang)}
	page := view.Base("Sign in", lang.String(), view.LoginPage(header, view.NewLoginData(state))...)
	return c.Render(http.StatusOK, "", page)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// cookieRelay copies the backend's Set-Cookie headers onto the browser
// response so the backend session reaches the visitor.
type cookieRelay struct {
	next login.Poster
	c    echo.Context
}

func (r *cookieRelay) PostJSON(ctx context.Context, path string, body any) (*apiclient.Response, error) {
	resp, err := r.next.PostJSON(ctx, path, body)
	switch {
	case resp != nil:
		r.relay(resp.Header)
	case err != nil:
		var statusErr *apiclient.StatusError
		if errors.As(err, &statusErr) {
			r.relay(statusErr.Response.Header)
		}
	}
	return resp, err
}

func (r *cookieRelay) relay(header http.Header) {
	for _, v := range header.Values("Set-Cookie") {
		r.c.Response().Header().Add("Set-Cookie", v)
	}
}
