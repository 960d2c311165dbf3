package components

import (
	"testing"

	"github.com/pthm/lucid"
)

func TestIconBox_States(t *testing.T) {
	tests := []struct {
		name   string
		props  lucid.Props
		expect string
	}{
		{
			name:   "defaults",
			props:  nil,
			expect: `class="lucid-IconBox lucid-IconBox-default"`,
		},
		{
			name:   "checkbox selected",
			props:  lucid.Props{"kind": "checkbox", "isSelected": true},
			expect: `class="lucid-IconBox lucid-IconBox-checkbox lucid-IconBox-is-selected"`,
		},
		{
			name:   "indeterminate wins over selected",
			props:  lucid.Props{"isSelected": true, "isIndeterminate": true},
			expect: `class="lucid-IconBox lucid-IconBox-default lucid-IconBox-is-indeterminate"`,
		},
		{
			name:   "disabled suppresses active",
			props:  lucid.Props{"isActive": true, "isDisabled": true},
			expect: `aria-disabled="true" class="lucid-IconBox lucid-IconBox-default lucid-IconBox-is-disabled"`,
		},
		{
			name:   "className first",
			props:  lucid.Props{"className": "mine", "isActive": true},
			expect: `class="mine lucid-IconBox lucid-IconBox-default lucid-IconBox-is-active"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := lucid.TestRender(IconBox.New(tt.props))
			if err != nil {
				t.Fatalf("TestRender() error = %v", err)
			}
			if !result.HTMLContains(tt.expect) {
				t.Errorf("HTML = %q, want it to contain %q", result.HTML, tt.expect)
			}
		})
	}
}

func TestIconBox_IconAndLabel(t *testing.T) {
	el := IconBox.New(nil,
		"Remind me",
		IconBoxIcon.New(nil, ClockIcon.New(nil)),
	)

	result, err := lucid.TestRender(el)
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}

	if !result.HTMLContains(`<span class="lucid-IconBox-icon"><svg`) {
		t.Errorf("icon slot missing: %s", result.HTML)
	}
	if !result.HTMLContains(`<span class="lucid-IconBox-label">Remind me</span>`) {
		t.Errorf("label missing: %s", result.HTML)
	}
	if result.Count("lucid-ClockIcon") != 1 {
		t.Errorf("icon rendered %d times, want once", result.Count("lucid-ClockIcon"))
	}
}

func TestIconBox_IconAliasProp(t *testing.T) {
	el := IconBox.New(lucid.Props{
		"Icon": lucid.Props{"children": WarningLightIcon.New(nil)},
	}, "Careful")

	result, err := lucid.TestRender(el)
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}
	if !result.HTMLContainsAll("lucid-IconBox-icon", "lucid-WarningLightIcon", "Careful") {
		t.Errorf("HTML = %s", result.HTML)
	}
}

func TestIconBox_NoIconNoLabel(t *testing.T) {
	result, err := lucid.TestRender(IconBox.New(nil))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}
	if result.HTMLContainsAny("lucid-IconBox-icon", "lucid-IconBox-label") {
		t.Errorf("empty slots rendered: %s", result.HTML)
	}
}

func TestIconBox_InvalidKind(t *testing.T) {
	result, err := lucid.TestRender(IconBox.New(lucid.Props{"kind": "toggle"}))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}
	if !result.HasWarning("IconBox", "kind") {
		t.Errorf("Warnings = %v", result.Warnings)
	}
}

func TestIconBox_Example(t *testing.T) {
	ex := IconBox.Peek().Examples[0]
	result, err := lucid.TestRender(ex.Render(IconBox))
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v", result.Warnings)
	}
	if result.Count("lucid-IconBox-checkbox") != 4 {
		t.Errorf("expected four checkbox boxes: %s", result.HTML)
	}
}
