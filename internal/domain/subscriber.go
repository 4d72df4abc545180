package domain

import "time"

// Subscriber - пользователь Telegram, подписанный на уведомления
type Subscriber struct {
	ChatID       int64     `json:"chat_id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	RegisteredAt time.Time `json:"registered_at"` // UTC
	Subscription string    `json:"subscription"`  // ключ сервиса, "" - не выбран
	Approved     bool      `json:"approved"`
}

// HasSubscription - выбран ли сервис
func (s Subscriber) HasSubscription() bool {
	return s.Subscription != ""
}

// EligibleFor - получает ли подписчик рассылку по ключу key.
// Проверку, что key есть в реестре, делает вызывающий код.
func (s Subscriber) EligibleFor(key string) bool {
	return s.Approved && s.Subscription != "" && s.Subscription == key
}
