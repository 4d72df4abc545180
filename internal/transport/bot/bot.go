package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
	"github.com/NastyaGoryachaya/slot-notifier/internal/domain"
	"github.com/NastyaGoryachaya/slot-notifier/internal/service/subscriber"
	"gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

//go:generate mockgen -source=bot.go -destination=mocks/mocks.go -package=mocks

const handlerTimeout = 5 * time.Second

// Subscribers - справочник подписчиков для команд бота
type Subscribers interface {
	Register(ctx context.Context, in subscriber.Registration) (domain.Subscriber, bool, error)
	Get(ctx context.Context, chatID int64) (domain.Subscriber, error)
	Subscribe(ctx context.Context, chatID int64, key string) (domain.ServiceEntry, error)
	Approve(ctx context.Context, chatID int64) (domain.Subscriber, error)
}

// Fetcher - разовый запрос ближайшей даты для /checkFreeDate
type Fetcher interface {
	FirstFreeTerm(ctx context.Context, entry domain.ServiceEntry) (string, error)
}

// Bot - обёртка над telebot с командами сервиса
type Bot struct {
	bot         *telebot.Bot
	subs        Subscribers
	fetch       Fetcher
	adminChatID int64
	reserveURL  string
	logger      *slog.Logger
}

// New создаёт бота и регистрирует маршруты команд
func New(cfg config.TelegramConfig, subs Subscribers, fetch Fetcher, logger *slog.Logger) (*Bot, error) {
	bot := &Bot{
		subs:        subs,
		fetch:       fetch,
		adminChatID: cfg.AdminChatID,
		reserveURL:  cfg.ReserveURL,
		logger:      logger,
	}

	pollTimeout := cfg.LongPollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 10 * time.Second
	}
	b, err := telebot.NewBot(telebot.Settings{
		Token:   cfg.Token,
		Poller:  &telebot.LongPoller{Timeout: pollTimeout},
		OnError: bot.onError,
	})
	if err != nil {
		return nil, err
	}
	bot.bot = b
	bot.out = b

	b.Use(middleware.Recover())

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/help", bot.handleHelp)
	b.Handle("/services", bot.handleServices)
	b.Handle("/checkFreeDate", bot.handleCheckFreeDate)
	b.Handle(telebot.OnCallback, bot.handleCallback)
	return bot, nil
}

// Sender - клиент Telegram для рассылки уведомлений
func (b *Bot) Sender() *telebot.Bot {
	return b.bot
}

// Start запускает long polling, блокирующий вызов идёт в отдельной горутине
func (b *Bot) Start(_ context.Context) {
	b.logger.Info("telegram bot started", slog.String("username", b.bot.Me.Username))
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
	b.logger.Info("telegram bot stopped")
}

func (b *Bot) onError(err error, c telebot.Context) {
	attrs := []any{slog.Any("err", err)}
	if c != nil && c.Chat() != nil {
		attrs = append(attrs, slog.Int64("chat_id", c.Chat().ID))
	}
	b.logger.Error("telegram handler failed", attrs...)
}

func handlerContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), handlerTimeout)
}
