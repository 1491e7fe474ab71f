package view

import (
	"encoding/json"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/storefront/internal/login"
)

const (
	loginSessionName = "login-session"
	loginStateKey    = "state"
)

// LoadLoginState restores the login page state stored in the visitor's
// session. A missing or unreadable session yields the zero state.
func LoadLoginState(c echo.Context) login.State {
	var s login.State
	sess, err := session.Get(loginSessionName, c)
	if err != nil {
		return s
	}
	raw, ok := sess.Values[loginStateKey].(string)
	if !ok {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		slog.Warn("Discarding unreadable login state", "error", err)
		return login.State{}
	}
	s.Form.Pending = false
	return s
}

// SaveLoginState stores s in the visitor's session. The password is never
// persisted.
func SaveLoginState(c echo.Context, s login.State) error {
	sess, err := session.Get(loginSessionName, c)
	if err != nil {
		return err
	}
	s.Form.Password = ""
	s.Form.Pending = false
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	sess.Values[loginStateKey] = string(raw)
	return sess.Save(c.Request(), c.Response())
}
