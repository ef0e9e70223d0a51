// Package state keeps per-user dialogue sessions in memory and dispatches
// free-text input to the handler bound to the user's current state.
// Sessions are keyed by Telegram user id and are never shared between users.
package state
