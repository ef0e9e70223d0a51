// Package commands describes slash commands kept in the registry.
package commands

import (
	tele "gopkg.in/telebot.v4"
)

// Command is a registered slash command. Hidden commands stay callable
// but are not published in the Telegram command menu; admin-only ones are
// wrapped with the admin guard by the router.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	AdminOnly   bool
	Hidden      bool
	// Aliases are extra names accepted when a user types the command as
	// plain text, with or without the leading slash.
	Aliases []string
}

// Visible reports whether the command belongs in the public menu.
func (c Command) Visible() bool {
	return !c.Hidden && !c.AdminOnly
}
