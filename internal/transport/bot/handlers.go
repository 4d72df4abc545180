package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/slot-notifier/internal/consts"
	"github.com/NastyaGoryachaya/slot-notifier/internal/domain"
	errs "github.com/NastyaGoryachaya/slot-notifier/internal/errors"
	"github.com/NastyaGoryachaya/slot-notifier/internal/pkg/botfmt"
	"github.com/NastyaGoryachaya/slot-notifier/internal/ports/errcode"
	"github.com/NastyaGoryachaya/slot-notifier/internal/service/subscriber"
	"gopkg.in/telebot.v4"
)

const (
	msgPending  = "Очікуй підтвердження від адміністратора перед початком користування ботом."
	msgWelcome  = "Вітаю! Щоб вибрати сервіс для сповіщення — напиши команду /services"
	msgApproved = "✅ Адміністратор підтвердив доступ. Тепер ти можеш користуватися ботом.\n" +
		"Щоб вибрати сервіс для сповіщення — напиши команду /services"
	msgChooseService = "Оберіть сервіс, який хочете відстежувати:"
	msgServiceChosen = "✅ Сервіс обрано!"
	msgChoiceError   = "Помилка при обробці вибору."
	msgHelp          = "Доступні команди:\n" +
		"/start - реєстрація та запит доступу\n" +
		"/services - вибрати сервіс для сповіщень\n" +
		"/checkFreeDate - перевірити першу вільну дату зараз\n" +
		"/help - ця довідка"
)

// handleStart - регистрация; новый пользователь ждёт одобрения администратора
func (b *Bot) handleStart(c telebot.Context) error {
	ctx, cancel := handlerContext()
	defer cancel()

	in := subscriber.Registration{ChatID: c.Chat().ID}
	if u := c.Sender(); u != nil {
		in.Username = u.Username
		in.FirstName = u.FirstName
	}

	sub, created, err := b.subs.Register(ctx, in)
	if err != nil {
		return c.Send(translateBotError(fromServiceError(err)))
	}

	if created {
		b.logger.Info("bot: new access request",
			slog.Int64("chat_id", sub.ChatID),
			slog.String("username", sub.Username))
		if err := c.Send(msgPending); err != nil {
			return err
		}
		return b.requestApproval(sub)
	}
	if !sub.Approved {
		return c.Send(msgPending)
	}
	return c.Send(msgWelcome)
}

// requestApproval - запрос администратору с кнопкой "Дозволити"
func (b *Bot) requestApproval(sub domain.Subscriber) error {
	_, err := b.out.Send(telebot.ChatID(b.adminChatID),
		botfmt.AccessRequest(sub.Username, sub.FirstName),
		approveMarkup(sub.ChatID))
	if err != nil {
		b.logger.Error("bot: admin notification failed",
			slog.Int64("chat_id", sub.ChatID),
			slog.Any("err", err))
	}
	return err
}

func (b *Bot) handleHelp(c telebot.Context) error {
	return c.Send(msgHelp)
}

func (b *Bot) handleServices(c telebot.Context) error {
	return c.Send(msgChooseService, servicesKeyboard())
}

// handleCheckFreeDate - разовая проверка по подписке пользователя
func (b *Bot) handleCheckFreeDate(c telebot.Context) error {
	ctx, cancel := handlerContext()
	defer cancel()

	text, markup := b.checkFreeDate(ctx, c.Chat().ID)
	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}

// checkFreeDate не меняет сохранённую дату: это делает только цикл опроса
func (b *Bot) checkFreeDate(ctx context.Context, chatID int64) (string, *telebot.ReplyMarkup) {
	entry, err := b.subscribedEntry(ctx, chatID)
	if err != nil {
		return translateBotError(fromServiceError(err)), nil
	}

	term, err := b.fetch.FirstFreeTerm(ctx, entry)
	if err != nil {
		return translateBotError(errcode.FetchFailed), nil
	}
	if term == "" {
		return translateBotError(errcode.NoFreeTerm), nil
	}
	b.logger.Info("bot: on-demand check",
		slog.Int64("chat_id", chatID),
		slog.String("service", entry.Key),
		slog.String("term", term))
	return botfmt.FreeTermReply(entry, term), botfmt.ReserveMarkup(b.reserveURL)
}

func (b *Bot) subscribedEntry(ctx context.Context, chatID int64) (domain.ServiceEntry, error) {
	sub, err := b.subs.Get(ctx, chatID)
	if err != nil {
		return domain.ServiceEntry{}, err
	}
	if !sub.Approved {
		return domain.ServiceEntry{}, errs.ErrNotApproved
	}
	if !sub.HasSubscription() {
		return domain.ServiceEntry{}, errs.ErrNotSubscribed
	}
	entry, ok := consts.Lookup(sub.Subscription)
	if !ok {
		return domain.ServiceEntry{}, fmt.Errorf("%w: %s", errs.ErrUnknownService, sub.Subscription)
	}
	return entry, nil
}

// handleCallback - диспетчер инлайн-кнопок approve_ и sub_
func (b *Bot) handleCallback(c telebot.Context) error {
	cb := c.Callback()
	if cb == nil {
		return nil
	}
	kind, arg := parseCallback(cb.Data)
	switch kind {
	case callbackApprove:
		return b.handleApprove(c, arg)
	case callbackSubscribe:
		return b.handleSubscribe(c, arg)
	default:
		b.logger.Warn("bot: unknown callback", slog.String("data", cb.Data))
		return c.Respond()
	}
}

func (b *Bot) handleSubscribe(c telebot.Context, key string) error {
	ctx, cancel := handlerContext()
	defer cancel()

	entry, err := b.subs.Subscribe(ctx, c.Chat().ID, key)
	if err != nil {
		b.logger.Warn("bot: subscription rejected",
			slog.Int64("chat_id", c.Chat().ID),
			slog.String("key", key),
			slog.Any("err", err))
		return c.Respond(&telebot.CallbackResponse{Text: msgChoiceError, ShowAlert: true})
	}

	if err := c.Respond(&telebot.CallbackResponse{Text: msgServiceChosen}); err != nil {
		b.logger.Warn("bot: callback answer failed", slog.Any("err", err))
	}
	return c.Send(botfmt.SubscribedReply(entry), telebot.ModeMarkdown)
}

func (b *Bot) handleApprove(c telebot.Context, arg string) error {
	if c.Chat() == nil || c.Chat().ID != b.adminChatID {
		b.logger.Warn("bot: approval from non-admin chat", slog.String("target", arg))
		return c.Respond(&telebot.CallbackResponse{Text: translateBotError(errcode.Forbidden), ShowAlert: true})
	}

	ctx, cancel := handlerContext()
	defer cancel()

	target, ok := parseChatID(arg)
	if !ok {
		return c.Respond(&telebot.CallbackResponse{Text: msgChoiceError, ShowAlert: true})
	}

	reply, notify := b.approve(ctx, target)
	if err := c.Respond(); err != nil {
		b.logger.Warn("bot: callback answer failed", slog.Any("err", err))
	}
	if err := c.Send(reply); err != nil {
		return err
	}
	if !notify {
		return nil
	}
	if _, err := b.out.Send(telebot.ChatID(target), msgApproved); err != nil {
		b.logger.Error("bot: approval notice failed", slog.Int64("chat_id", target), slog.Any("err", err))
	}
	return nil
}

// approve - ответ администратору и нужно ли уведомить пользователя
func (b *Bot) approve(ctx context.Context, target int64) (string, bool) {
	_, err := b.subs.Approve(ctx, target)
	switch {
	case err == nil:
		return fmt.Sprintf("Користувачу %d дозволено доступ.", target), true
	case errors.Is(err, errs.ErrSubscriberNotFound):
		b.logger.Warn("bot: approval for unknown subscriber", slog.Int64("chat_id", target))
		return fmt.Sprintf("Користувача %d не знайдено.", target), false
	case errors.Is(err, errs.ErrAlreadyApproved):
		b.logger.Info("bot: subscriber already approved", slog.Int64("chat_id", target))
		return fmt.Sprintf("Користувач %d вже має доступ.", target), false
	default:
		return translateBotError(errcode.Internal), false
	}
}
