package netutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"
)

func TestRedactToken(t *testing.T) {
	msg := "Post \"https://api.telegram.org/bot123456:AA-bb_cc/sendMessage\": timeout"
	want := "Post \"https://api.telegram.org/bot<redacted>/sendMessage\": timeout"
	if got := RedactToken(msg); got != want {
		t.Fatalf("RedactToken = %q", got)
	}
}

func TestStatusAndRetryable(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		status    int
		retryable bool
		kind      string
	}{
		{"bad gateway text", errors.New("telegram: Bad Gateway (502)"), 502, true, "http_5xx"},
		{"chat not found", errors.New("telegram: Bad Request: chat not found (400)"), 400, false, "http_4xx"},
		{"api error", &tele.Error{Code: 403, Description: "Forbidden: bot was blocked by the user"}, 403, false, "http_4xx"},
		{"flood", tele.FloodError{RetryAfter: 3}, 429, true, "flood"},
		{"reset", &net.OpError{Op: "read", Err: syscall.ECONNRESET}, 0, true, "conn"},
		{"dial", &net.OpError{Op: "dial", Err: errors.New("refused")}, 0, true, "dial"},
		{"deadline", fmt.Errorf("send: %w", context.DeadlineExceeded), 0, false, "timeout"},
		{"plain", errors.New("boom"), 0, false, "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.status {
				t.Errorf("Status = %d, want %d", got, tc.status)
			}
			if got := Retryable(tc.err); got != tc.retryable {
				t.Errorf("Retryable = %v, want %v", got, tc.retryable)
			}
			if got := Kind(tc.err); got != tc.kind {
				t.Errorf("Kind = %q, want %q", got, tc.kind)
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	if got := RetryAfter(tele.FloodError{RetryAfter: 4}); got != 4*time.Second {
		t.Fatalf("RetryAfter = %v", got)
	}
	if got := RetryAfter(errors.New("x")); got != 0 {
		t.Fatalf("RetryAfter plain = %v", got)
	}
}
