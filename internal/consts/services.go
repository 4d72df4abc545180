package consts

import "github.com/NastyaGoryachaya/slot-notifier/internal/domain"

const (
	PKKForeigners      = "PKK_FOREIGNERS"
	PlasticLicence     = "PLASTIC_LICENCE"
	RegistrationRP     = "REGISTRATION_RP"
	RegistrationAbroad = "REGISTRATION_ABROAD"
)

// Services - реестр отслеживаемых услуг. Порядок фиксирован: в нём идёт опрос.
var Services = []domain.ServiceEntry{
	{Key: PKKForeigners, ServiceID: 55039, DisplayName: "PKK для іноземців", ButtonLabel: "PKK (іноземці)"},
	{Key: PlasticLicence, ServiceID: 37752, DisplayName: "Отримання посвідчення водія", ButtonLabel: "Посвідчення водія"},
	{Key: RegistrationRP, ServiceID: 13457, DisplayName: "Реєстрація авто з РП", ButtonLabel: "Реєстрація з РП"},
	{Key: RegistrationAbroad, ServiceID: 16953, DisplayName: "Реєстрація авто з-за кордону", ButtonLabel: "Реєстрація з-за кордону"},
}

// Lookup - поиск услуги по ключу подписки
func Lookup(key string) (domain.ServiceEntry, bool) {
	for _, s := range Services {
		if s.Key == key {
			return s, true
		}
	}
	return domain.ServiceEntry{}, false
}

func IsKnown(key string) bool {
	_, ok := Lookup(key)
	return ok
}
