package bot

import (
	"strconv"
	"strings"

	"github.com/NastyaGoryachaya/slot-notifier/internal/consts"
	"gopkg.in/telebot.v4"
)

const (
	approvePrefix   = "approve_"
	subscribePrefix = "sub_"

	servicesPerRow = 2
)

// servicesKeyboard - выбор сервиса, по две кнопки в ряд в порядке реестра
func servicesKeyboard() *telebot.ReplyMarkup {
	var rows [][]telebot.InlineButton
	var row []telebot.InlineButton
	for _, s := range consts.Services {
		row = append(row, telebot.InlineButton{Text: s.ButtonLabel, Data: subscribePrefix + s.Key})
		if len(row) == servicesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &telebot.ReplyMarkup{InlineKeyboard: rows}
}

// approveMarkup - кнопка одобрения в запросе администратору
func approveMarkup(chatID int64) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: "✅ Дозволити", Data: approvePrefix + strconv.FormatInt(chatID, 10)}},
		},
	}
}

type callbackKind int

const (
	callbackUnknown callbackKind = iota
	callbackApprove
	callbackSubscribe
)

// parseCallback разбирает data инлайн-кнопки.
// Кнопки создаются без unique, поэтому telebot отдаёт data как есть (иногда с префиксом \f).
func parseCallback(data string) (callbackKind, string) {
	data = strings.TrimSpace(strings.TrimPrefix(data, "\f"))
	switch {
	case strings.HasPrefix(data, approvePrefix):
		return callbackApprove, strings.TrimPrefix(data, approvePrefix)
	case strings.HasPrefix(data, subscribePrefix):
		return callbackSubscribe, strings.TrimPrefix(data, subscribePrefix)
	default:
		return callbackUnknown, data
	}
}

// parseChatID - chat id из approve_{id}
func parseChatID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
