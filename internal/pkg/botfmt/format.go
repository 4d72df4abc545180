package botfmt

import (
	"fmt"

	"github.com/NastyaGoryachaya/slot-notifier/internal/domain"
	"gopkg.in/telebot.v4"
)

const reserveButtonText = "Зарезервуй!"

// FreeTermAlert - текст рассылки о новой свободной дате (Markdown)
func FreeTermAlert(entry domain.ServiceEntry, term string) string {
	return fmt.Sprintf("🔔 Перша вільна дата для *%s*: %s", entry.DisplayName, term)
}

// FreeTermReply - ответ на /checkFreeDate
func FreeTermReply(entry domain.ServiceEntry, term string) string {
	return fmt.Sprintf("Перша вільна дата для резервування (%s): %s", entry.DisplayName, term)
}

// SubscribedReply - подтверждение выбора сервиса (Markdown)
func SubscribedReply(entry domain.ServiceEntry) string {
	return fmt.Sprintf("Ти підписався на сповіщення про вільні дати для: *%s*. \n"+
		"Використовуй команду /checkFreeDate, щоб перевірити наявність вільних дат.", entry.DisplayName)
}

// AccessRequest - сообщение администратору о новом пользователе
func AccessRequest(username, firstName string) string {
	return fmt.Sprintf("Новий запит на доступ від користувача %s (%s)", username, firstName)
}

// ReserveMarkup - инлайн-кнопка со ссылкой на сайт бронирования
func ReserveMarkup(reserveURL string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: reserveButtonText, URL: reserveURL}},
		},
	}
}
