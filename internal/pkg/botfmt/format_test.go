package botfmt

import (
	"strings"
	"testing"

	"github.com/NastyaGoryachaya/slot-notifier/internal/consts"
)

func TestFreeTermAlert(t *testing.T) {
	entry, _ := consts.Lookup(consts.PKKForeigners)
	got := FreeTermAlert(entry, "2024-05-10")
	want := "🔔 Перша вільна дата для *PKK для іноземців*: 2024-05-10"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFreeTermReply(t *testing.T) {
	entry, _ := consts.Lookup(consts.PlasticLicence)
	got := FreeTermReply(entry, "2024-06-01")
	if !strings.Contains(got, "Отримання посвідчення водія") || !strings.HasSuffix(got, "2024-06-01") {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestSubscribedReply(t *testing.T) {
	entry, _ := consts.Lookup(consts.RegistrationRP)
	got := SubscribedReply(entry)
	if !strings.Contains(got, "*Реєстрація авто з РП*") || !strings.Contains(got, "/checkFreeDate") {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestReserveMarkup(t *testing.T) {
	m := ReserveMarkup("https://rezerwacja.zielona-gora.pl/")
	if len(m.InlineKeyboard) != 1 || len(m.InlineKeyboard[0]) != 1 {
		t.Fatalf("expected a single button, got %+v", m.InlineKeyboard)
	}
	btn := m.InlineKeyboard[0][0]
	if btn.URL != "https://rezerwacja.zielona-gora.pl/" || btn.Text != "Зарезервуй!" {
		t.Fatalf("unexpected button: %+v", btn)
	}
}
