package router

import "github.com/m3rciful/runclub/core/telegram/ui"

// FallbackOptions derives router options from a bot's fallback provider.
func FallbackOptions(p ui.FallbackProvider) (TextOptions, CallbackOptions) {
	if p == nil {
		return TextOptions{}, CallbackOptions{}
	}
	return TextOptions{
			UnknownText:     p.UnknownText(),
			UnknownDocument: p.UnknownDocument(),
		}, CallbackOptions{
			NotFound: p.UnknownCallback(),
		}
}
