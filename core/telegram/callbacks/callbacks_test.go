package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		name         string
		cb           *tele.Callback
		key, payload string
	}{
		{"nil", nil, "", ""},
		{"raw with payload", &tele.Callback{Data: "\freg_day|wed"}, "reg_day", "wed"},
		{"raw without payload", &tele.Callback{Data: "\fmenu"}, "menu", ""},
		{"unique set", &tele.Callback{Unique: "reg_slot", Data: "wed_run"}, "reg_slot", "wed_run"},
		{"payload keeps separators", &tele.Callback{Data: Data("form", "run|cold")}, "form", "run|cold"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, payload := ParseCallbackData(tc.cb)
			if key != tc.key || payload != tc.payload {
				t.Fatalf("got (%q,%q), want (%q,%q)", key, payload, tc.key, tc.payload)
			}
		})
	}
}
