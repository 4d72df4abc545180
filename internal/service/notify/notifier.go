package notify

import (
	"log/slog"

	"github.com/NastyaGoryachaya/slot-notifier/internal/domain"
	"github.com/NastyaGoryachaya/slot-notifier/internal/pkg/botfmt"
	"github.com/NastyaGoryachaya/slot-notifier/internal/pkg/metrics"
	"gopkg.in/telebot.v4"
)

// Sender - отправка сообщений в Telegram, её реализует *telebot.Bot
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

type Notifier struct {
	sender     Sender
	reserveURL string
	logger     *slog.Logger
}

func New(sender Sender, reserveURL string, logger *slog.Logger) *Notifier {
	return &Notifier{sender: sender, reserveURL: reserveURL, logger: logger}
}

// Notify отправляет каждому получателю по одному сообщению о свободной дате.
// Ошибка для одного получателя логируется и не прерывает рассылку. Возвращает число успешных отправок.
func (n *Notifier) Notify(recipients []int64, entry domain.ServiceEntry, term string) int {
	if len(recipients) == 0 {
		return 0
	}
	msg := botfmt.FreeTermAlert(entry, term)
	markup := botfmt.ReserveMarkup(n.reserveURL)

	sent := 0
	for _, chatID := range recipients {
		if _, err := n.sender.Send(telebot.ChatID(chatID), msg, markup, telebot.ModeMarkdown); err != nil {
			metrics.RecordNotification(false)
			n.logger.Error("notify: send failed",
				slog.Int64("chat_id", chatID),
				slog.String("service", entry.Key),
				slog.Any("err", err))
			continue
		}
		metrics.RecordNotification(true)
		n.logger.Debug("notify: send ok", slog.Int64("chat_id", chatID), slog.String("service", entry.Key))
		sent++
	}
	n.logger.Info("notify: broadcast done",
		slog.String("service", entry.Key),
		slog.String("term", term),
		slog.Int("recipients", len(recipients)),
		slog.Int("sent", sent))
	return sent
}
