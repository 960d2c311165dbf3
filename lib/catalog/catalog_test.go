package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm/lucid"
	"github.com/pthm/lucid/lib/encoding"
)

func testRegistry(t *testing.T) *lucid.Registry {
	t.Helper()

	item := lucid.CreateClass(lucid.Definition{
		DisplayName: "Menu.Item",
		PropsName:   "Item",
		PropTypes:   lucid.NewSchema(lucid.Bool("isActive")),
	})
	menu := lucid.CreateClass(lucid.Definition{
		DisplayName: "Menu",
		PropTypes: lucid.NewSchema(
			lucid.OneOf("orient", "horizontal", "vertical").Describe(`
				Direction of
				the menu.
			`),
			lucid.String("label").IsRequired(),
			lucid.Number("size"),
			lucid.Any("empty"),
		),
		DefaultProps: lucid.Props{"orient": "vertical", "size": 2, "empty": nil},
		Statics: lucid.Statics{Peek: lucid.Peek{
			Description: `
				A list of actions.
			`,
			Categories: []string{"navigation"},
			MadeFrom:   []string{"Button"},
			Examples: []lucid.Example{{
				Name:   "basic",
				Render: func(self *lucid.Component) *lucid.Element { return self.New(nil) },
			}},
		}},
		Render: func(ctx context.Context, p lucid.Props) *lucid.Element { return nil },
	}).WithChild("Item", item)
	icon := lucid.CreateClass(lucid.Definition{DisplayName: "Icon"})

	reg := lucid.NewRegistry()
	reg.Add(menu, icon)
	return reg
}

func TestBuild(t *testing.T) {
	cat := Build(testRegistry(t))

	require.Equal(t, []string{"Menu", "Menu.Item", "Icon"}, cat.Names())

	menu, err := cat.Lookup("Menu")
	require.NoError(t, err)
	require.Equal(t, "A list of actions.", menu.Description)
	require.Equal(t, []string{"navigation"}, menu.Categories)
	require.Equal(t, []string{"Button"}, menu.MadeFrom)
	require.Equal(t, []string{"Menu.Item"}, menu.Children)
	require.Equal(t, []string{"basic"}, menu.Examples)

	var names []string
	for _, p := range menu.Props {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"orient", "label", "size", "empty", "className", "style", "children"}, names)

	orient := menu.Props[0]
	require.Equal(t, "string", orient.Kind)
	require.Equal(t, "oneof=horizontal vertical", orient.Rule)
	require.Equal(t, `"vertical"`, orient.Default)
	require.Equal(t, "Direction of the menu.", orient.Doc)
	require.False(t, orient.Standard)

	require.True(t, menu.Props[1].Required)
	require.Equal(t, "2", menu.Props[2].Default)
	require.Equal(t, "null", menu.Props[3].Default)
	require.True(t, menu.Props[4].Standard)

	item, err := cat.Lookup("Menu.Item")
	require.NoError(t, err)
	require.Equal(t, "Item", item.PropsName)
}

func TestLookup_Suggestion(t *testing.T) {
	cat := Build(testRegistry(t))

	_, err := cat.Lookup("menu")
	require.Error(t, err)
	require.True(t, lucid.IsNotFound(err))
	require.Contains(t, err.Error(), `did you mean "Menu"?`)

	_, err = cat.Lookup("Spreadsheet")
	require.True(t, lucid.IsNotFound(err))
	require.NotContains(t, err.Error(), "did you mean")
}

func TestSuggest(t *testing.T) {
	cat := Build(testRegistry(t))

	require.Equal(t, []string{"Menu", "Menu.Item"}, cat.Suggest("Menu.", 0))
	require.Equal(t, []string{"Icon"}, cat.Suggest("icn", 5))
	require.Len(t, cat.Suggest("Menu.", 1), 1)
	require.Empty(t, cat.Suggest("zzzzzzzz", 3))
}

func TestCategories(t *testing.T) {
	cat := Build(testRegistry(t))

	groups := cat.Categories()
	require.Equal(t, []string{"Menu"}, groups["navigation"])
	require.Equal(t, []string{"Menu.Item", "Icon"}, groups["uncategorized"])
}

func TestCatalog_EncodeRoundTrip(t *testing.T) {
	cat := Build(testRegistry(t))

	for _, f := range encoding.Formats() {
		t.Run(string(f), func(t *testing.T) {
			enc, err := encoding.NewEncoder(f)
			require.NoError(t, err)

			data, err := enc.Marshal(cat)
			require.NoError(t, err)

			var out Catalog
			require.NoError(t, enc.Unmarshal(data, &out))
			require.Equal(t, cat, out)
		})
	}
}
