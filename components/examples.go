package components

import (
	"github.com/pthm/lucid"
)

// Register adds every component of the package, with sub-components, to
// reg.
func Register(reg *lucid.Registry) {
	reg.Add(
		Icon,
		WarningLightIcon,
		ClockIcon,
		Point,
		Line,
		Legend,
		IconBox,
	)
}

func legendBasicExample(self *lucid.Component) *lucid.Element {
	item, _ := self.Child("Item")
	return self.New(nil,
		item.New(lucid.Props{"hasPoint": true, "hasLine": true, "color": COLOR_0}, "Revenue"),
		item.New(lucid.Props{"hasPoint": true, "pointKind": 2, "color": COLOR_1}, "Cost"),
		item.New(lucid.Props{"hasLine": true, "color": "#123abc"}, "Target"),
	)
}

func legendHorizontalExample(self *lucid.Component) *lucid.Element {
	item, _ := self.Child("Item")
	return self.New(lucid.Props{"orient": "horizontal", "hasBorders": false},
		item.New(lucid.Props{"hasPoint": true, "color": COLOR_GOOD}, "Passed"),
		item.New(lucid.Props{"hasPoint": true, "pointKind": 3, "color": COLOR_BAD}, "Failed"),
	)
}

func iconBoxStatesExample(self *lucid.Component) *lucid.Element {
	icon, _ := self.Child("Icon")
	articleStyle := map[string]string{
		"margin-right":  "10px",
		"display":       "grid",
		"justify-items": "center",
	}

	states := []struct {
		title string
		prop  string
		label string
	}{
		{"Is Active", "isActive", "Active IconBox"},
		{"Is Disabled", "isDisabled", "Disabled IconBox"},
		{"Is Indeterminate", "isIndeterminate", "Indeterminate IconBox"},
		{"Is Selected", "isSelected", "Selected IconBox"},
	}

	articles := make([]*lucid.Element, len(states))
	for i, st := range states {
		articles[i] = lucid.El("article", lucid.Props{"style": articleStyle},
			lucid.El("h3", nil, st.title),
			self.New(lucid.Props{"kind": "checkbox", st.prop: true},
				icon.New(nil, ClockIcon.New(nil)),
				st.label,
			),
		)
	}
	return lucid.El("section", lucid.Props{"style": map[string]string{"display": "flex"}}, articles)
}
