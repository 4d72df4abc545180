package notify

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/NastyaGoryachaya/slot-notifier/internal/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

type sentMessage struct {
	chatID int64
	text   string
	opts   []interface{}
}

// fakeSender - запоминает все попытки отправки, для chat id из failFor возвращает ошибку
type fakeSender struct {
	mu      sync.Mutex
	failFor map[int64]bool
	calls   []sentMessage
}

func (f *fakeSender) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	chat, ok := to.(telebot.ChatID)
	if !ok {
		return nil, errors.New("unexpected recipient type")
	}
	text, _ := what.(string)
	f.calls = append(f.calls, sentMessage{chatID: int64(chat), text: text, opts: opts})
	if f.failFor[int64(chat)] {
		return nil, errors.New("forbidden: bot was blocked by the user")
	}
	return &telebot.Message{}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotify_AllRecipients(t *testing.T) {
	sender := &fakeSender{}
	n := New(sender, "https://rezerwacja.zielona-gora.pl/", discardLogger())
	entry, _ := consts.Lookup(consts.PKKForeigners)

	sent := n.Notify([]int64{1, 2}, entry, "2024-05-10")

	assert.Equal(t, 2, sent)
	require.Len(t, sender.calls, 2)
	for i, want := range []int64{1, 2} {
		call := sender.calls[i]
		assert.Equal(t, want, call.chatID)
		assert.Contains(t, call.text, "PKK для іноземців")
		assert.Contains(t, call.text, "2024-05-10")

		var markup *telebot.ReplyMarkup
		var mode telebot.ParseMode
		for _, o := range call.opts {
			switch v := o.(type) {
			case *telebot.ReplyMarkup:
				markup = v
			case telebot.ParseMode:
				mode = v
			}
		}
		require.NotNil(t, markup)
		assert.Equal(t, "https://rezerwacja.zielona-gora.pl/", markup.InlineKeyboard[0][0].URL)
		assert.Equal(t, telebot.ModeMarkdown, mode)
	}
}

// Ошибка для одного получателя не должна прерывать рассылку
func TestNotify_FailureIsolated(t *testing.T) {
	sender := &fakeSender{failFor: map[int64]bool{2: true}}
	n := New(sender, "https://example.test/", discardLogger())
	entry, _ := consts.Lookup(consts.PlasticLicence)

	sent := n.Notify([]int64{1, 2, 3}, entry, "2024-06-01")

	assert.Equal(t, 2, sent)
	require.Len(t, sender.calls, 3)
	assert.Equal(t, int64(1), sender.calls[0].chatID)
	assert.Equal(t, int64(2), sender.calls[1].chatID)
	assert.Equal(t, int64(3), sender.calls[2].chatID)
}

func TestNotify_NoRecipients(t *testing.T) {
	sender := &fakeSender{}
	n := New(sender, "https://example.test/", discardLogger())
	entry, _ := consts.Lookup(consts.RegistrationRP)

	assert.Equal(t, 0, n.Notify(nil, entry, "2024-05-10"))
	assert.Empty(t, sender.calls)
}
