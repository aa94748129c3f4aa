package testutil

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context that records what handlers reply.
// Methods it does not override panic when called.
type FakeContext struct {
	tele.Context

	User    *tele.User
	Input   string
	Cb      *tele.Callback
	EditErr error

	Sent      []string
	SentOpts  [][]interface{}
	Edited    []string
	Responses []*tele.CallbackResponse
}

// NewFakeContext creates a context for a text message from userID
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:  &tele.User{ID: userID, Username: "tester"},
		Input: text,
	}
}

// NewFakeCallback creates a context for an inline button press from userID
func NewFakeCallback(userID int64, unique string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID, Username: "tester"},
		Cb:   &tele.Callback{ID: "cb-1", Unique: unique},
	}
}

func (c *FakeContext) Sender() *tele.User       { return c.User }
func (c *FakeContext) Text() string             { return c.Input }
func (c *FakeContext) Callback() *tele.Callback { return c.Cb }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, fmt.Sprint(what))
	c.SentOpts = append(c.SentOpts, opts)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, fmt.Sprint(what))
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Responses = append(c.Responses, nil)
		return nil
	}
	c.Responses = append(c.Responses, resp...)
	return nil
}

// LastSent returns the most recent sent message, or "" when none was sent
func (c *FakeContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}
