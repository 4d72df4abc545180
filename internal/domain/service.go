package domain

// ServiceEntry - одна категория записи во внешней системе бронирования
type ServiceEntry struct {
	Key         string // PKK_FOREIGNERS, PLASTIC_LICENCE ...
	ServiceID   int    // идентификатор услуги в Bookero
	DisplayName string // название для сообщений
	ButtonLabel string // короткая подпись кнопки в /services
}
