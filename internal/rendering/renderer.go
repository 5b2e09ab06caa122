package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// node is the shape of gomponents.Node.
type node interface {
	Render(w io.Writer) error
}

// Renderer writes templ components and gomponents nodes. It implements
// echo.Renderer so handlers can call c.Render(status, "", component).
type Renderer struct{}

// New returns a Renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) write(ctx context.Context, w io.Writer, component any) error {
	switch v := component.(type) {
	case templ.Component:
		return v.Render(ctx, w)
	case node:
		return v.Render(w)
	default:
		return fmt.Errorf("rendering: unsupported component type %T", component)
	}
}

// Render implements echo.Renderer. The name is unused; the component is
// passed as data.
func (r *Renderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.write(c.Request().Context(), w, data)
}

// Bytes renders components back to back into a buffer.
func (r *Renderer) Bytes(ctx context.Context, components ...any) ([]byte, error) {
	var buf bytes.Buffer
	for _, component := range components {
		if err := r.write(ctx, &buf, component); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Fragments renders several components into one HTML response. htmx uses
// this for a swap target plus its out-of-band siblings. Nothing is written
// if any component fails.
func (r *Renderer) Fragments(c echo.Context, status int, components ...any) error {
	body, err := r.Bytes(c.Request().Context(), components...)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}
