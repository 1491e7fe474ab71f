package view

import (
	"github.com/nfrund/storefront/internal/login"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Element ids targeted by htmx swaps.
const (
	LoginFormID = "login-form"
)

// FieldErrorID returns the id of the error slot rendered under field.
func FieldErrorID(field login.Field) string {
	return string(field) + "-error"
}

// LoginData is the view model of the login page.
type LoginData struct {
	Email    string
	Pending  bool
	Feedback login.FeedbackState
}

// NewLoginData projects the login state onto what the page renders.
// The password is never echoed back.
func NewLoginData(s login.State) LoginData {
	return LoginData{
		Email:    s.Form.Email,
		Pending:  s.Form.Pending,
		Feedback: s.Feedback,
	}
}

// LoginPage is the body of the login page: header, brand and the form card.
func LoginPage(header HeaderData, data LoginData) []cmp.Node {
	return []cmp.Node{
		Header(header),
		g.Main(
			g.Class("flex justify-center min-h-screen"),
			g.Div(
				g.Div(g.Class("w-full my-3 text-center"), cmp.Text("ECOMMERCE")),
				g.Div(
					g.Class("login-card"),
					LoginForm(data),
					g.Span(
						g.Class("text-xs font-medium"),
						cmp.Text("By continuing, you agree to Ecommerce's "),
						g.A(g.Href("#"), cmp.Text("Conditions of Use")),
						cmp.Text(" and "),
						g.A(g.Href("#"), cmp.Text("Privacy Notice")),
						cmp.Text("."),
					),
					g.Div(
						g.Class("mt-5 border"),
						g.Div(
							g.Span(g.Class("chevron chevron-right invisible"), g.Aria("hidden", "true"), cmp.Text("›")),
							cmp.Text(" "),
							g.Span(g.Class("chevron chevron-down"), g.Aria("hidden", "true"), cmp.Text("⌄")),
						),
					),
					g.Div(g.Class("w-full border-t mt-3")),
					g.Div(g.Class("text-xs font-black mt-3"), cmp.Text("Buying for work?")),
					g.A(g.Href("#"), g.Class("text-xs"), cmp.Text("Shop on Ecommerce Business")),
				),
				g.Div(
					g.Class("divider"),
					g.Div(g.Class("border-t")),
					g.Div(g.Class("text-xs text-gray-500"), cmp.Text("New to Ecommerce?")),
					g.Div(g.Class("border-t")),
				),
				g.Button(
					g.Type("button"),
					g.Class("secondary-button"),
					cmp.Text("Create your account"),
				),
			),
		),
	}
}

// LoginForm is the swappable form fragment. While a request is in flight htmx
// disables every input and the button, mirroring the pending flag.
func LoginForm(data LoginData) cmp.Node {
	return g.Form(
		g.ID(LoginFormID),
		g.Method("post"),
		g.Action("/login"),
		hx.Post("/login"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		cmp.Attr("hx-disabled-elt", "find input, find button"),
		g.Div(g.Class("text-3xl mb-3"), cmp.Text("Sign in")),
		cmp.If(data.Feedback.Message != "",
			g.P(g.ID("login-message"), g.Class("feedback-success"), g.Role("status"), cmp.Text(data.Feedback.Message)),
		),
		cmp.If(data.Feedback.FormError != "",
			g.P(g.ID("login-form-error"), g.Class("feedback-error"), g.Role("alert"), cmp.Text(data.Feedback.FormError)),
		),
		g.Label(g.For("email"), g.Class("text-xs font-black mb-1"), cmp.Text("Email or mobile phone number")),
		g.Input(
			g.Type("text"), g.ID("email"), g.Name("email"), g.Value(data.Email),
			g.AutoComplete("username"),
			cmp.If(data.Pending, g.Disabled()),
			hx.Post("/login/fields/email"),
			hx.Trigger("input changed delay:300ms"),
			hx.Target("#"+FieldErrorID(login.FieldEmail)),
			hx.Swap("outerHTML"),
			cmp.Attr("hx-params", "email"),
		),
		FieldError(login.FieldEmail, data.Feedback.EmailError),
		g.Label(g.For("password"), g.Class("text-xs font-black mb-1"), cmp.Text("Password")),
		g.Input(
			g.Type("password"), g.ID("password"), g.Name("password"),
			g.AutoComplete("current-password"),
			cmp.If(data.Pending, g.Disabled()),
			hx.Post("/login/fields/password"),
			hx.Trigger("input changed delay:300ms"),
			hx.Target("#"+FieldErrorID(login.FieldPassword)),
			hx.Swap("outerHTML"),
			// The field endpoint only needs to know an edit happened.
			cmp.Attr("hx-params", "none"),
		),
		FieldError(login.FieldPassword, data.Feedback.PasswordError),
		g.Button(
			g.Type("submit"),
			cmp.If(data.Pending, g.Disabled()),
			g.Class("bg-yellow-400 text-sm py-2 px-4 rounded-md mt-3 w-full"),
			cmp.Text("Login"),
		),
	)
}

// FieldError is the error slot under an input. It is always rendered so that
// field edits can swap it out.
func FieldError(field login.Field, message string) cmp.Node {
	return g.P(
		g.ID(FieldErrorID(field)),
		g.Class("field-error"),
		cmp.Text(message),
	)
}
