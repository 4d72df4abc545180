package bot

import (
	"errors"

	errs "github.com/NastyaGoryachaya/slot-notifier/internal/errors"
	"github.com/NastyaGoryachaya/slot-notifier/internal/ports/errcode"
)

func fromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, errs.ErrSubscriberNotFound):
		return errcode.SubscriberNotFound
	case errors.Is(err, errs.ErrNotApproved):
		return errcode.PendingApproval
	case errors.Is(err, errs.ErrAlreadyApproved):
		return errcode.AlreadyApproved
	case errors.Is(err, errs.ErrNotSubscribed):
		return errcode.NotSubscribed
	case errors.Is(err, errs.ErrUnknownService):
		return errcode.UnknownService
	case errors.Is(err, errs.ErrFetchFailed):
		return errcode.FetchFailed
	default:
		return errcode.Internal
	}
}

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.SubscriberNotFound:
		return "Спочатку зареєструйся командою /start"
	case errcode.PendingApproval:
		return msgPending
	case errcode.AlreadyApproved:
		return "Доступ вже підтверджено."
	case errcode.NotSubscribed:
		return "Спочатку обери сервіс командою /services"
	case errcode.UnknownService:
		return "Помилка при обробці вибору."
	case errcode.FetchFailed:
		return "Під час отримання даних сталася помилка."
	case errcode.NoFreeTerm:
		return "Немає вільних термінів."
	case errcode.Forbidden:
		return "Недостатньо прав."
	default:
		return "Внутрішня помилка сервісу, спробуй пізніше"
	}
}
