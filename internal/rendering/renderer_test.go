package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func render(t *testing.T, component interface{}) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	return rec, c.Render(http.StatusOK, "", component)
}

func TestRender_Gomponent(t *testing.T) {
	rec, err := render(t, g.P(g.ID("greeting"), cmp.Text("hello")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<p id="greeting">hello</p>`, rec.Body.String())
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
}

func TestRender_Templ(t *testing.T) {
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<span>templ</span>")
		return err
	})

	rec, err := render(t, component)
	require.NoError(t, err)
	assert.Equal(t, "<span>templ</span>", rec.Body.String())
}

func TestRender_Unsupported(t *testing.T) {
	_, err := render(t, 42)
	assert.ErrorContains(t, err, "unsupported component type: int")
}
