// Package teletest provides in-memory fakes of telebot types for handler tests.
package teletest

import (
	"errors"
	"strings"
	"sync"

	"github.com/m3rciful/runclub/core/telegram/callbacks"

	tele "gopkg.in/telebot.v4"
)

// Sent records one outgoing call made through a fake Context.
type Sent struct {
	Text   string
	Opts   *tele.SendOptions
	Markup *tele.ReplyMarkup
	Edited bool
}

// Context is a fake tele.Context. Methods not overridden here panic through the
// nil embedded interface, which surfaces unexpected calls in tests.
type Context struct {
	tele.Context

	Upd       tele.Update
	Store     map[string]any
	Sent      []Sent
	Responses int

	// SendErr, when set, is returned by every send and edit.
	SendErr error
}

// NewMessage builds a fake text update from the given user.
func NewMessage(user *tele.User, text string) *Context {
	msg := &tele.Message{
		ID:     1,
		Sender: user,
		Chat:   &tele.Chat{ID: user.ID, Type: tele.ChatPrivate},
		Text:   text,
	}
	return &Context{Upd: tele.Update{ID: 100, Message: msg}, Store: map[string]any{}}
}

// NewCallback builds a fake inline-button update carrying unique and payload
// in Telebot's raw \f<unique>|<payload> encoding.
func NewCallback(user *tele.User, unique, payload string) *Context {
	msg := &tele.Message{
		ID:   2,
		Chat: &tele.Chat{ID: user.ID, Type: tele.ChatPrivate},
	}
	cb := &tele.Callback{ID: "cb", Sender: user, Message: msg, Data: callbacks.Data(unique, payload)}
	return &Context{Upd: tele.Update{ID: 101, Callback: cb}, Store: map[string]any{}}
}

// User returns a Telegram user fixture.
func User(id int64, first, last, username string) *tele.User {
	return &tele.User{ID: id, FirstName: first, LastName: last, Username: username}
}

func (c *Context) Update() tele.Update { return c.Upd }

func (c *Context) Message() *tele.Message {
	if c.Upd.Message != nil {
		return c.Upd.Message
	}
	if c.Upd.Callback != nil {
		return c.Upd.Callback.Message
	}
	return nil
}

func (c *Context) Callback() *tele.Callback { return c.Upd.Callback }

func (c *Context) Query() *tele.Query { return c.Upd.Query }

func (c *Context) Sender() *tele.User {
	switch {
	case c.Upd.Callback != nil:
		return c.Upd.Callback.Sender
	case c.Upd.Message != nil:
		return c.Upd.Message.Sender
	}
	return nil
}

func (c *Context) Chat() *tele.Chat {
	if m := c.Message(); m != nil {
		return m.Chat
	}
	return nil
}

func (c *Context) Recipient() tele.Recipient { return c.Chat() }

func (c *Context) Text() string {
	if c.Upd.Message != nil {
		return c.Upd.Message.Text
	}
	return ""
}

func (c *Context) Args() []string { return strings.Fields(c.Text()) }

func (c *Context) Get(key string) any { return c.Store[key] }

func (c *Context) Set(key string, v any) { c.Store[key] = v }

func (c *Context) Respond(...*tele.CallbackResponse) error {
	c.Responses++
	return nil
}

func (c *Context) Send(what any, opts ...any) error { return c.record(false, what, opts) }

func (c *Context) Reply(what any, opts ...any) error { return c.record(false, what, opts) }

func (c *Context) Edit(what any, opts ...any) error { return c.record(true, what, opts) }

func (c *Context) EditOrSend(what any, opts ...any) error {
	return c.record(c.Upd.Callback != nil, what, opts)
}

func (c *Context) EditOrReply(what any, opts ...any) error {
	return c.record(c.Upd.Callback != nil, what, opts)
}

func (c *Context) Delete() error { return nil }

func (c *Context) record(edited bool, what any, opts []any) error {
	if c.SendErr != nil {
		return c.SendErr
	}
	s := Sent{Edited: edited}
	if text, ok := what.(string); ok {
		s.Text = text
	}
	for _, o := range opts {
		switch v := o.(type) {
		case *tele.SendOptions:
			s.Opts = v
			if v != nil && v.ReplyMarkup != nil {
				s.Markup = v.ReplyMarkup
			}
		case *tele.ReplyMarkup:
			s.Markup = v
		}
	}
	c.Sent = append(c.Sent, s)
	return nil
}

// Last returns the most recent outgoing message or an empty Sent.
func (c *Context) Last() Sent {
	if len(c.Sent) == 0 {
		return Sent{}
	}
	return c.Sent[len(c.Sent)-1]
}

// Buttons flattens the inline keyboard of s into "unique|data" or "url:<url>" strings.
func (s Sent) Buttons() []string {
	if s.Markup == nil {
		return nil
	}
	var out []string
	for _, row := range s.Markup.InlineKeyboard {
		for _, b := range row {
			if b.URL != "" {
				out = append(out, "url:"+b.URL)
				continue
			}
			out = append(out, b.Unique+"|"+b.Data)
		}
	}
	return out
}

// HasButton reports whether s carries an inline button with the given unique and payload.
func (s Sent) HasButton(unique, payload string) bool {
	for _, b := range s.Buttons() {
		if b == unique+"|"+payload {
			return true
		}
	}
	return false
}

// Outgoing records one message sent through a fake Bot.
type Outgoing struct {
	To   tele.Recipient
	Text string
	Opts []any
}

// Bot fakes the subset of *tele.Bot used to push messages to arbitrary chats.
type Bot struct {
	mu   sync.Mutex
	Out  []Outgoing
	Err  error
	Sent chan struct{}
}

// NewBot returns a fake bot whose Sent channel receives one value per attempted send.
func NewBot() *Bot {
	return &Bot{Sent: make(chan struct{}, 64)}
}

// Send records the message and returns Err.
func (b *Bot) Send(to tele.Recipient, what any, opts ...any) (*tele.Message, error) {
	b.mu.Lock()
	defer func() {
		b.mu.Unlock()
		if b.Sent != nil {
			b.Sent <- struct{}{}
		}
	}()
	if b.Err != nil {
		return nil, b.Err
	}
	text, _ := what.(string)
	b.Out = append(b.Out, Outgoing{To: to, Text: text, Opts: opts})
	return &tele.Message{Text: text}, nil
}

// Messages returns a snapshot of recorded messages.
func (b *Bot) Messages() []Outgoing {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Outgoing(nil), b.Out...)
}

// ErrSend is a convenience transport failure for tests.
var ErrSend = errors.New("teletest: send failed")
