// Package format renders Telegram HTML parse-mode fragments.
package format

import (
	"html"
	"strings"
)

// Escape makes arbitrary text safe to embed in an HTML parse-mode message.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Bold wraps escaped text in <b>.
func Bold(s string) string {
	return "<b>" + Escape(s) + "</b>"
}

// Link renders an anchor; both the URL and the label are escaped.
func Link(url, label string) string {
	return `<a href="` + Escape(url) + `">` + Escape(label) + `</a>`
}

// Lines joins non-empty lines with newlines.
func Lines(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
