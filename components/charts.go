// Package components holds the visual components built on the lucid
// runtime: icons, chart primitives, the legend and the icon box.
package components

import (
	"strings"

	"github.com/pthm/lucid"
)

// ns scopes every class name in this package under "lucid".
const ns = lucid.Namespace("lucid")

// Chart series colors. Strings that start with '#' are used as literal
// colors instead.
const (
	COLOR_0 = "color-chart-0"
	COLOR_1 = "color-chart-1"
	COLOR_2 = "color-chart-2"
	COLOR_3 = "color-chart-3"
	COLOR_4 = "color-chart-4"
	COLOR_5 = "color-chart-5"
	COLOR_6 = "color-chart-6"

	COLOR_GOOD    = "color-good"
	COLOR_BAD     = "color-bad"
	COLOR_NEUTRAL = "color-neutral"
)

// Legend indicator geometry.
const (
	POINT_SIZE = 12
	LINE_WIDTH = 22
)

// isCustomColor reports whether color is a literal CSS color rather than a
// series color class.
func isCustomColor(color string) bool {
	return strings.HasPrefix(color, "#")
}

// colorClass returns the scoped class for a series color, or "" for custom
// colors.
func colorClass(color string) string {
	if color == "" || isCustomColor(color) {
		return ""
	}
	return "&-" + color
}
