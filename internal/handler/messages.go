package handler

import (
	"strings"
	"unicode/utf8"

	tele "gopkg.in/telebot.v3"
)

const (
	// maxMessageRunes stays under Telegram's 4096 character limit. Markup is
	// counted too, so a chunk is always shorter once rendered.
	maxMessageRunes = 4000

	// maxFieldRunes bounds a single word or translation in a message
	maxFieldRunes = 100
)

// clip shortens s to maxFieldRunes runes
func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxFieldRunes {
		return s
	}
	r := []rune(s)
	return string(r[:maxFieldRunes-1]) + "…"
}

// chunkLines joins lines with newlines into messages of at most
// maxMessageRunes runes. Lines are never split; a chunk never starts
// with an empty line.
func chunkLines(lines []string) []string {
	var chunks []string
	var b strings.Builder
	size := 0

	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if size > 0 && size+1+n > maxMessageRunes {
			chunks = append(chunks, b.String())
			b.Reset()
			size = 0
		}
		if size == 0 && n == 0 {
			continue
		}
		if size > 0 {
			b.WriteByte('\n')
			size++
		}
		b.WriteString(line)
		size += n
	}
	if size > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

// editOrSendChunks shows the first chunk in place of the callback's message
// and sends the rest after it. The keyboard goes on the last chunk.
func (h *Handler) editOrSendChunks(c tele.Context, chunks []string, markup *tele.ReplyMarkup) error {
	for i, chunk := range chunks {
		opts := []interface{}{tele.ModeHTML}
		if i == len(chunks)-1 {
			opts = append(opts, markup)
		}

		var err error
		if i == 0 {
			err = h.editOrSend(c, chunk, opts...)
		} else {
			err = c.Send(chunk, opts...)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
