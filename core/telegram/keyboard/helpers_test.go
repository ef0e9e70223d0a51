package keyboard

import "testing"

func TestInlineButtonsRows(t *testing.T) {
	markup := InlineButtonsRows(
		Row(InlineBtn{Text: "Open", URL: "https://example.org"}),
		nil,
		Row(InlineBtn{Text: "A", Unique: "menu", Data: "main"}, InlineBtn{Text: "B", Unique: "menu", Data: "restart"}),
	)
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2 (empty rows dropped)", len(markup.InlineKeyboard))
	}
	if got := markup.InlineKeyboard[0][0].URL; got != "https://example.org" {
		t.Fatalf("url button = %q", got)
	}
	second := markup.InlineKeyboard[1]
	if len(second) != 2 || second[0].Unique != "menu" || second[1].Data != "restart" {
		t.Fatalf("unexpected data row: %+v", second)
	}
}

func TestInlineButtonsNPerRow(t *testing.T) {
	buttons := []InlineBtn{{Text: "1"}, {Text: "2"}, {Text: "3"}}
	markup := InlineButtonsNPerRow(buttons, 2)
	if len(markup.InlineKeyboard) != 2 || len(markup.InlineKeyboard[1]) != 1 {
		t.Fatalf("unexpected layout: %+v", markup.InlineKeyboard)
	}
}
