package lucid

import (
	"context"
	"errors"
	"testing"
)

func TestCheckProps(t *testing.T) {
	schema := NewSchema(
		OneOf("orient", "horizontal", "vertical"),
		Number("size").Validate("min=0"),
		String("color").Validate("series_color"),
		Func("onClick"),
		Object("style"),
		Node("icon"),
		String("label").IsRequired(),
	)

	tests := []struct {
		name     string
		props    Props
		failures []string
	}{
		{
			name:     "valid",
			props:    Props{"orient": "vertical", "size": 12, "color": "#aabbcc", "label": "x", "onClick": func() {}},
			failures: nil,
		},
		{
			name:     "missing required",
			props:    Props{},
			failures: []string{"label"},
		},
		{
			name:     "undefined required",
			props:    Props{"label": Undefined},
			failures: []string{"label"},
		},
		{
			name:     "null optional passes",
			props:    Props{"label": "x", "orient": nil},
			failures: nil,
		},
		{
			name:     "enum mismatch",
			props:    Props{"label": "x", "orient": "diagonal"},
			failures: []string{"orient"},
		},
		{
			name:     "wrong kinds",
			props:    Props{"label": 3, "size": "big", "onClick": "go", "style": "color:red"},
			failures: []string{"size", "onClick", "style", "label"},
		},
		{
			name:     "rule failure",
			props:    Props{"label": "x", "size": -1, "color": "#abcd1"},
			failures: []string{"size", "color"},
		},
		{
			name:     "named color passes",
			props:    Props{"label": "x", "color": "color-chart-3"},
			failures: nil,
		},
		{
			name:     "undeclared props are ignored",
			props:    Props{"label": "x", "data-id": struct{}{}},
			failures: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := CheckProps("Test", schema, tt.props)
			got := make([]string, len(errs))
			for i, err := range errs {
				got[i] = err.Prop
			}
			if !equalStrings(got, tt.failures) {
				t.Errorf("CheckProps() failed props = %v, want %v", got, tt.failures)
			}
		})
	}
}

func TestCheckProps_ErrorKinds(t *testing.T) {
	schema := NewSchema(String("label").IsRequired(), Bool("flag"))

	errs := CheckProps("Test", schema, Props{"flag": "yes"})
	if len(errs) != 2 {
		t.Fatalf("CheckProps() returned %d errors, want 2", len(errs))
	}
	if !errors.Is(errs[0], ErrMissingProp) {
		t.Errorf("errs[0] = %v, want ErrMissingProp", errs[0])
	}
	if !errors.Is(errs[1], ErrInvalidProp) {
		t.Errorf("errs[1] = %v, want ErrInvalidProp", errs[1])
	}
	for _, err := range errs {
		if !IsPropError(err) {
			t.Errorf("IsPropError(%v) = false", err)
		}
	}
	if got := errs[0].Error(); got != `Test: prop "label": is required` {
		t.Errorf("Error() = %q", got)
	}
}

func TestCheckProps_NilSchema(t *testing.T) {
	if errs := CheckProps("Test", nil, Props{"a": 1}); len(errs) != 0 {
		t.Errorf("CheckProps() = %v, want none", errs)
	}
}

func TestCheckProps_UnusableRules(t *testing.T) {
	tests := []struct {
		name  string
		pt    PropType
		value any
	}{
		{"rule on unsupported type", Any("tags").Validate("oneof=a b"), []string{"a"}},
		{"unknown rule tag", String("tags").Validate("not_a_rule"), "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := CheckProps("Test", NewSchema(tt.pt), Props{"tags": tt.value})
			if len(errs) != 1 {
				t.Fatalf("CheckProps() returned %d errors, want 1", len(errs))
			}
			if !errors.Is(errs[0], ErrInvalidProp) {
				t.Errorf("error = %v, want ErrInvalidProp", errs[0])
			}
		})
	}
}

func TestRender_UnusableRuleWarns(t *testing.T) {
	comp := CreateClass(Definition{
		DisplayName: "Tagged",
		PropTypes:   NewSchema(Any("tags").Validate("oneof=a b")),
		Render: func(ctx context.Context, p Props) *Element {
			return El("span", nil, "ok")
		},
	})

	result, err := TestRender(comp.New(Props{"tags": []string{"a"}}))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}
	if result.HTML != "<span>ok</span>" {
		t.Errorf("HTML = %q", result.HTML)
	}
	if !result.HasWarning("Tagged", "tags") {
		t.Errorf("Warnings = %v, want a tags warning", result.Warnings)
	}
}
