package handler

import (
	"fmt"
	"testing"
	"time"

	"shark/internal/domain"
	"shark/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "show_words",
			expected: "show_words",
		},
		{
			name:     "string with whitespace",
			input:    "  history  ",
			expected: "history",
		},
		{
			name:     "string with newline",
			input:    "show\nwords",
			expected: "showwords",
		},
		{
			name:     "string with tab",
			input:    "main\t_menu",
			expected: "main_menu",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "\fcancel\x00\x01",
			expected: "cancel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHandleShowWords(t *testing.T) {
	t.Run("empty set alerts", func(t *testing.T) {
		h, m := newTestHandler()
		m.words.On("Load").Return(domain.WordSet{})

		c := testutil.NewFakeCallback(1, "show_words")
		assert.NoError(t, h.handleShowWords(c))

		require.Len(t, c.Responses, 1)
		assert.True(t, c.Responses[0].ShowAlert)
		assert.Empty(t, c.Edited)
	})

	t.Run("words are edited into the message", func(t *testing.T) {
		h, m := newTestHandler()
		words := testutil.NewTestWords("cat", "кот")
		m.words.On("Load").Return(words)

		c := testutil.NewFakeCallback(1, "show_words")
		assert.NoError(t, h.handleShowWords(c))

		assert.Equal(t, renderQuiz(words), c.Edited)
		assert.Empty(t, c.Sent)
		assert.Len(t, c.Responses, 1)
	})
}

func TestEditOrSend_EditErrors(t *testing.T) {
	tests := []struct {
		name         string
		editErr      error
		expectedSent int
	}{
		{
			name:         "message not modified is acknowledged",
			editErr:      fmt.Errorf("telegram: Bad Request: message is not modified (400)"),
			expectedSent: 0,
		},
		{
			name:         "other edit error sends a new message",
			editErr:      fmt.Errorf("telegram: message to edit not found (400)"),
			expectedSent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler()

			c := testutil.NewFakeCallback(1, "back")
			c.EditErr = tt.editErr

			assert.NoError(t, h.editOrSend(c, "text"))

			assert.Len(t, c.Sent, tt.expectedSent)
			assert.Len(t, c.Responses, 1)
		})
	}
}

func TestEditOrSend_NoCallback(t *testing.T) {
	h, _ := newTestHandler()

	c := testutil.NewFakeContext(1, "")
	assert.NoError(t, h.editOrSend(c, "text", tele.ModeHTML))

	assert.Equal(t, []string{"text"}, c.Sent)
	assert.Equal(t, []interface{}{tele.ModeHTML}, c.SentOpts[0])
}

func TestHandleHistory(t *testing.T) {
	t.Run("empty archive alerts", func(t *testing.T) {
		h, m := newTestHandler()
		m.archive.On("List", historyLimit).Return([]domain.Snapshot{})

		c := testutil.NewFakeCallback(1, "history")
		assert.NoError(t, h.handleHistory(c))

		require.Len(t, c.Responses, 1)
		assert.True(t, c.Responses[0].ShowAlert)
	})

	t.Run("snapshots are listed", func(t *testing.T) {
		h, m := newTestHandler()
		snaps := []domain.Snapshot{
			testutil.NewTestSnapshot("a", time.Date(2024, 1, 2, 3, 4, 0, 0, time.Local), testutil.NewTestWords("cat", "кот")),
		}
		m.archive.On("List", historyLimit).Return(snaps)

		c := testutil.NewFakeCallback(1, "history")
		assert.NoError(t, h.handleHistory(c))

		assert.Equal(t, renderHistory(snaps), c.Edited)
		m.archive.AssertExpectations(t)
	})
}

func TestHandleCallback_Routing(t *testing.T) {
	tests := []struct {
		name   string
		unique string
		data   string
		check  func(t *testing.T, h *Handler, m handlerMocks, c *testutil.FakeContext)
	}{
		{
			name:   "cancel by unique resets state",
			unique: "cancel",
			check: func(t *testing.T, h *Handler, m handlerMocks, c *testutil.FakeContext) {
				assert.Equal(t, domain.StateIdle, h.GetState(1).State)
				assert.Equal(t, []string{mainMenuText}, c.Edited)
			},
		},
		{
			name: "show words by data",
			data: "\fshow_words",
			check: func(t *testing.T, h *Handler, m handlerMocks, c *testutil.FakeContext) {
				m.words.AssertCalled(t, "Load")
			},
		},
		{
			name: "main menu by data",
			data: "main_menu",
			check: func(t *testing.T, h *Handler, m handlerMocks, c *testutil.FakeContext) {
				assert.Equal(t, []string{mainMenuText}, c.Edited)
			},
		},
		{
			name: "unknown data is acknowledged",
			data: "page_2",
			check: func(t *testing.T, h *Handler, m handlerMocks, c *testutil.FakeContext) {
				assert.Empty(t, c.Edited)
				assert.Len(t, c.Responses, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.words.On("Load").Return(domain.WordSet{})
			h.SetState(1, &domain.StateData{
				State:        domain.StateWaitingTranslations,
				PendingWords: []string{"cat"},
			})

			c := testutil.NewFakeCallback(1, tt.unique)
			c.Cb.Data = tt.data

			assert.NoError(t, h.handleCallback(c))
			tt.check(t, h, m, c)
		})
	}
}
