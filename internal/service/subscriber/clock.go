package subscriber

import "time"

// Clock - источник времени регистрации
type Clock interface {
	Now() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time { return time.Now().UTC() }

func NewRealClock() Clock { return utcClock{} }
