package bot

import (
	"errors"
	"fmt"
	"testing"

	errs "github.com/NastyaGoryachaya/slot-notifier/internal/errors"
	"github.com/NastyaGoryachaya/slot-notifier/internal/ports/errcode"
)

func TestFromServiceError(t *testing.T) {
	tests := []struct {
		err  error
		want errcode.Code
	}{
		{errs.ErrSubscriberNotFound, errcode.SubscriberNotFound},
		{errs.ErrNotApproved, errcode.PendingApproval},
		{errs.ErrNotSubscribed, errcode.NotSubscribed},
		{errs.ErrAlreadyApproved, errcode.AlreadyApproved},
		{fmt.Errorf("%w: X", errs.ErrUnknownService), errcode.UnknownService},
		{fmt.Errorf("%w: PKK: timeout", errs.ErrFetchFailed), errcode.FetchFailed},
		{errors.New("boom"), errcode.Internal},
	}
	for _, tt := range tests {
		if got := fromServiceError(tt.err); got != tt.want {
			t.Errorf("fromServiceError(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestTranslateBotError(t *testing.T) {
	if got := translateBotError(errcode.PendingApproval); got != msgPending {
		t.Fatalf("unexpected pending text: %q", got)
	}
	if got := translateBotError(errcode.AlreadyApproved); got != "Доступ вже підтверджено." {
		t.Fatalf("unexpected already-approved text: %q", got)
	}
	if got := translateBotError(errcode.NoFreeTerm); got != "Немає вільних термінів." {
		t.Fatalf("unexpected no-term text: %q", got)
	}
	if got := translateBotError(errcode.FetchFailed); got != "Під час отримання даних сталася помилка." {
		t.Fatalf("unexpected fetch text: %q", got)
	}
}
