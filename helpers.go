package lucid

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context, so prop warnings go to whatever logger the request
// context carries:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    lucid.Render(w, r, components.Legend.New(props, items...))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// WithLogger returns a context whose renders report prop warnings to
// logger.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}
