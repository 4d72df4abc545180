package fetch_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/NastyaGoryachaya/slot-notifier/internal/consts"
	errs "github.com/NastyaGoryachaya/slot-notifier/internal/errors"
	"github.com/NastyaGoryachaya/slot-notifier/internal/service/fetch"
	fetchmocks "github.com/NastyaGoryachaya/slot-notifier/internal/service/fetch/mocks"
	"github.com/golang/mock/gomock"
)

// Success: API вернул дату, сервис отдаёт её как есть
func TestFirstFreeTerm_Success(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := fetchmocks.NewMockAvailabilityProvider(ctrl)
	entry, _ := consts.Lookup(consts.PKKForeigners)

	// Ожидаем запрос именно по ServiceID из реестра
	api.EXPECT().FirstFreeTerm(gomock.Any(), 55039).Return("2024-05-10", nil).Times(1)

	svc := fetch.NewService(api, slog.Default())
	got, err := svc.FirstFreeTerm(context.Background(), entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-05-10" {
		t.Fatalf("unexpected term: %q", got)
	}
}

// NoTerm: свободных дат нет - это не ошибка
func TestFirstFreeTerm_NoTerm(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := fetchmocks.NewMockAvailabilityProvider(ctrl)
	entry, _ := consts.Lookup(consts.PlasticLicence)
	api.EXPECT().FirstFreeTerm(gomock.Any(), entry.ServiceID).Return("", nil).Times(1)

	svc := fetch.NewService(api, slog.Default())
	got, err := svc.FirstFreeTerm(context.Background(), entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty term, got %q", got)
	}
}

// ApiError: падение API превращается в ErrFetchFailed, повторов нет
func TestFirstFreeTerm_ApiError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := fetchmocks.NewMockAvailabilityProvider(ctrl)
	entry, _ := consts.Lookup(consts.RegistrationRP)
	api.EXPECT().FirstFreeTerm(gomock.Any(), entry.ServiceID).Return("", errors.New("api timeout")).Times(1)

	svc := fetch.NewService(api, slog.Default())
	_, err := svc.FirstFreeTerm(context.Background(), entry)
	if !errors.Is(err, errs.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}
