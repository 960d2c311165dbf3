package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/lucid"
	"github.com/pthm/lucid/lib/catalog"
)

type showcaseOptions struct {
	out  string
	addr string
}

func newShowcaseCmd(a *app) *cobra.Command {
	opts := &showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Render every component example into one HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the page to a file instead of stdout")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Serve the page over HTTP on this address")

	return cmd
}

func runShowcase(cmd *cobra.Command, a *app, opts *showcaseOptions) error {
	page := showcasePage(a.registry)

	if opts.addr != "" {
		a.log.Info("serving showcase on " + opts.addr)
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(a.log.WithContext(r.Context()))
			if err := lucid.Render(w, r, page); err != nil {
				a.log.Error(err, "render showcase")
			}
		})
		if err := http.ListenAndServe(opts.addr, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	ctx := a.log.WithContext(cmd.Context())
	if opts.out == "" {
		return page.Render(ctx, cmd.OutOrStdout())
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(ctx, f)
}

// showcasePage builds the document: one section per component that has
// examples, in registration order.
func showcasePage(reg *lucid.Registry) *lucid.Element {
	var sections []*lucid.Element
	for _, comp := range reg.Components() {
		examples := comp.Peek().Examples
		if len(examples) == 0 {
			continue
		}
		entry := catalog.NewEntry(comp)

		body := []any{
			lucid.El("h2", nil, entry.Name),
			lucid.El("p", nil, entry.Description),
		}
		for _, ex := range examples {
			body = append(body,
				lucid.El("h3", nil, ex.Name),
				lucid.El("div", lucid.Props{"className": "showcase-example"}, ex.Render(comp)),
			)
		}
		sections = append(sections, lucid.El("section", lucid.Props{"id": entry.Name}, body))
	}

	return lucid.El("html", nil,
		lucid.El("head", nil,
			lucid.El("meta", lucid.Props{"charset": "utf-8"}),
			lucid.El("title", nil, "lucid showcase"),
		),
		lucid.El("body", nil,
			lucid.El("h1", nil, "lucid showcase"),
			sections,
		),
	)
}
